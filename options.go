package bitflag

// Options represents the options that can be set when creating a flag set.
type Options struct {
	// When enabled, ToggleFlags skips names that are not registered instead
	// of failing with ErrUnknownFlag.
	IgnoreUnknownToggles bool

	// Compression applied to the name block by MarshalBinary. The block is
	// only stored compressed when that makes it smaller.
	Compression CompressAlgorithm
}

var DefaultOptions = &Options{
	IgnoreUnknownToggles: false,
	Compression:          CompSnappy,
}
