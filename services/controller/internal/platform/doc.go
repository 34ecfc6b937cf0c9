// Package platform binds the controller's capability interfaces to real
// hardware. Exactly one binding compiles per target; on unsupported targets
// the constructors report errcode.Unsupported so host tooling can degrade
// gracefully.
package platform
