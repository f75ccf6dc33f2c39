// Package remote runs deploy commands on a host over SSH using
// golang.org/x/crypto/ssh.
package remote
