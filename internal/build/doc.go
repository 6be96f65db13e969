// Package build turns build options into an ordered plan of steps and runs
// it. A plan is a straight line: every step runs to completion before the
// next one starts, and the first external command that exits non-zero ends
// the build. The only decisions are made while planning, from the target's
// platform policy and the hot-reload, run and package options.
//
// The same step machinery drives shader compilation and the native library
// builds.
package build
