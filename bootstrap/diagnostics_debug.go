//go:build !release

package bootstrap

const diagnosticsEnabled = true
