package config

// ResolveSettings exposes resolveSettings for testing.
var ResolveSettings = resolveSettings
