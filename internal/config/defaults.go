package config

const (
	DefaultAltURL      = "https://ftp.altlinux.org/pub/distributions/ALTLinux/Sisyphus/files/list/bin.list.xz"
	DefaultSecondURL   = "http://download.proxmox.com/debian/pve/dists/bookworm/pve-no-subscription/binary-amd64/Packages"
	DefaultMappingFile = "package_mapping.txt"
)

// OutputFormats lists the accepted --output values.
var OutputFormats = []string{"table", "json", "yaml"}
