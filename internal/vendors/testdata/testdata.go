// Package testdata holds sample vendor confirmations.
package testdata

import (
	_ "embed"
)

var (
	//go:embed modernoptical.html
	ModernOpticalHTML string

	//go:embed marchon.html
	MarchonHTML string

	//go:embed luxottica.html
	LuxotticaHTML string

	//go:embed safilo.txt
	SafiloText string
)
