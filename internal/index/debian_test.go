package index

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frederic-klein/altcmp/internal/pkglist"
)

const proxmoxPackages = `Package: pve-manager
Architecture: amd64
Version: 8.1.4
Depends: apt (>= 1.5~), ceph-common (>= 12.2~)
Description: Proxmox Virtual Environment Management Tools

Package: proxmox-backup-client
Version: 3.1.2-1
Architecture: amd64

Package: libpve-common-perl
Version: 8.0.10+git123
Architecture: all

Package: qemu-server
Version: 1.2.3-4+git123
`

func TestDebianParser_Parse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  pkglist.Versions
	}{
		{
			name:  "stanzas",
			input: proxmoxPackages,
			want: pkglist.Versions{
				"pve-manager":           "8.1.4",
				"proxmox-backup-client": "3.1.2",
				"libpve-common-perl":    "8.0.10",
				"qemu-server":           "1.2.3",
			},
		},
		{
			name:  "empty data",
			input: "",
			want:  pkglist.Versions{},
		},
		{
			name:  "version before any package is ignored",
			input: "Version: 1.0\nPackage: foo\nVersion: 2.0\n",
			want:  pkglist.Versions{"foo": "2.0"},
		},
		{
			name:  "cursor survives across stanzas",
			input: "Package: foo\nVersion: 1.0\n\nVersion: 2.0\n",
			want:  pkglist.Versions{"foo": "2.0"},
		},
		{
			name:  "names and values are trimmed",
			input: "Package:   spaced  \nVersion:  0.9-1  \n",
			want:  pkglist.Versions{"spaced": "0.9"},
		},
		{
			name:  "unrelated lines are ignored",
			input: "Origin: Proxmox\nPackage: a\nFilename: pool/a.deb\nVersion: 3\nSHA256: abc\n",
			want:  pkglist.Versions{"a": "3"},
		},
		{
			name:  "non-conforming version is still recorded",
			input: "Package: weird\nVersion: not a version\n",
			want:  pkglist.Versions{"weird": "not a version"},
		},
		{
			name:  "empty package name keeps the previous cursor",
			input: "Package: a\nVersion: 1\nPackage:\nVersion: 2\n",
			want:  pkglist.Versions{"a": "2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DebianParser{}.Parse(tt.input)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDebianParser_Reentrant(t *testing.T) {
	// A second parse must not see the cursor of the first.
	_, err := DebianParser{}.Parse("Package: leftover\n")
	require.NoError(t, err)

	got, err := DebianParser{}.Parse("Version: 1.0\n")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParserFor(t *testing.T) {
	p, err := ParserFor(FormatALT)
	require.NoError(t, err)
	assert.Equal(t, FormatALT, p.Format())

	p, err = ParserFor(FormatDebian)
	require.NoError(t, err)
	assert.Equal(t, FormatDebian, p.Format())

	_, err = ParserFor("rpm")
	assert.ErrorContains(t, err, `unknown listing format "rpm"`)

	assert.Equal(t, []Format{FormatALT, FormatDebian}, Formats())
}
