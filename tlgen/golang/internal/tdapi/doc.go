// Package tdapi is the Go output for tlgen/testdata/td_api.yaml. It is
// committed so the wire behavior of real generated code is compiled and
// tested; TestCommittedPackageIsCurrent fails when it goes stale.
package tdapi

//go:generate go run ../../../../cmd/tlgen generate --schema ../../../testdata/td_api.yaml --output tdapi.go --header-file /dev/null
