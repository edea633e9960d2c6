// Package telemetry provides anonymous usage analytics for scatterbrain.
//
// It implements opt-in, GDPR-compliant telemetry: a first-run consent
// prompt, anonymous-only data (no plan content), a local consent/config
// file under ~/.scatterbrain, and an easy opt-out. Events are delivered
// through the PostHog SDK (client.go) rather than a bespoke HTTP POST, so
// batching, retry, and transport concerns live in the vendored client.
package telemetry

import "log/slog"

// apiKey is the PostHog project API key compiled into release builds via
// -ldflags. Telemetry silently degrades to a no-op when it's empty, which
// is always true for local/dev builds.
var apiKey = ""

// defaultClient is the process-wide telemetry client, set by Init.
var defaultClient Client = NewNoopClient()

// Init resolves consent (prompting on first run unless disabled is set),
// builds the PostHog-backed client when consent and an API key are both
// present, and installs it as the global client. disabled forces telemetry
// off regardless of prior consent — used for the --no-telemetry flag and
// when the CI environment variable is set.
func Init(version string, disabled bool) error {
	if disabled {
		defaultClient = NewNoopClient()
		return nil
	}

	cfg, err := CheckAndPromptConsent()
	if err != nil {
		slog.Warn("telemetry consent check failed, disabling telemetry", "error", err)
		defaultClient = NewNoopClient()
		return nil
	}

	client, err := NewPostHogClient(ClientConfig{
		APIKey:  apiKey,
		Version: version,
		Config:  cfg,
	})
	if err != nil {
		slog.Warn("telemetry client init failed, disabling telemetry", "error", err)
		defaultClient = NewNoopClient()
		return nil
	}

	defaultClient = client
	return nil
}

// GetClient returns the global telemetry client.
func GetClient() Client {
	return defaultClient
}

// Track records an event using the global client.
func Track(event string, properties Properties) {
	defaultClient.Track(event, properties)
}

// Shutdown flushes remaining events and closes the global client.
func Shutdown() {
	_ = defaultClient.Close()
}
