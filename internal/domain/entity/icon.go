package entity

import "strings"

// Icon is a key into the closed set of category glyphs.
type Icon string

const (
	IconTag       Icon = "tag"
	IconWallet    Icon = "wallet"
	IconPiggyBank Icon = "piggy-bank"
	IconBriefcase Icon = "briefcase"
	IconLaptop    Icon = "laptop"
	IconHome      Icon = "home"
	IconCart      Icon = "shopping-cart"
	IconCar       Icon = "car"
	IconReceipt   Icon = "receipt"
	IconUtensils  Icon = "utensils"
	IconFilm      Icon = "film"
	IconHeart     Icon = "heart"
	IconBag       Icon = "shopping-bag"
	IconGift      Icon = "gift"
	IconBook      Icon = "book"
	IconPlane     Icon = "plane"
	IconPaw       Icon = "paw"
	IconPhone     Icon = "phone"
)

// DefaultCategoryIcon is used whenever an unknown icon name is supplied.
const DefaultCategoryIcon = IconTag

var knownIcons = map[Icon]struct{}{
	IconTag: {}, IconWallet: {}, IconPiggyBank: {}, IconBriefcase: {}, IconLaptop: {},
	IconHome: {}, IconCart: {}, IconCar: {}, IconReceipt: {}, IconUtensils: {},
	IconFilm: {}, IconHeart: {}, IconBag: {}, IconGift: {}, IconBook: {},
	IconPlane: {}, IconPaw: {}, IconPhone: {},
}

// ResolveIcon maps a free-form icon name to a registered icon, falling back to the default glyph.
func ResolveIcon(name string) Icon {
	icon := Icon(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := knownIcons[icon]; ok {
		return icon
	}
	return DefaultCategoryIcon
}

// IsKnownIcon reports whether name is a registered icon.
func IsKnownIcon(name string) bool {
	_, ok := knownIcons[Icon(name)]
	return ok
}
