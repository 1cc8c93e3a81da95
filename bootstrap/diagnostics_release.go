//go:build release

package bootstrap

const diagnosticsEnabled = false
