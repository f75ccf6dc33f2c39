// Package deploy describes continuous deployment of the RMS service: which branch
// deploys to which environment, the remote steps run on the host, and the report
// of a run.
//
// A push to develop deploys to DEV and a push to main deploys to PROD; every other
// branch is rejected. The steps run strictly in order over a single SSH connection
// and the run stops at the first step that exits non-zero.
package deploy
