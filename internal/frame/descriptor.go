package frame

// Family is the top-level image category. The built-in set is extensible
// through Scheme configuration.
type Family string

const (
	FamilyTemplate Family = "template"
	FamilyAquarell Family = "aquarell"
)

// Variant is the framing style of the image.
type Variant string

const (
	VariantFull  Variant = "full"  // Uncropped, the default framing.
	VariantCrop  Variant = "crop"  // Cropped ("cropped" in source names).
	VariantClose Variant = "close" // Close framing ("small close" in source names).
)

// Tone is the light/dark color variant of the image.
type Tone string

const (
	ToneLight Tone = "light"
	ToneDark  Tone = "dark"
)

// Descriptor is the structured reading of one informal filename. Every
// field is populated: Parse returns a Descriptor only when the whole name
// matched the convention.
type Descriptor struct {
	// OriginalName is the unmodified input filename, extension included.
	OriginalName string
	Family       Family
	// Size is the normalized lowercase WxH token, 2-4 digits per dimension.
	Size    string
	Variant Variant
	Tone    Tone
}
