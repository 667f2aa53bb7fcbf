package types

// Version is overwritten at build time via -ldflags
var Version = "dev"

// SandboxEnv is the environment variable that marks a restricted runner
// without cloud metadata or secret access
const SandboxEnv = "AWS_EC2_METADATA_DISABLED"
