package catalog

import "strings"

// OverlayKind enumerates the overlays a page can show.
type OverlayKind int

const (
	OverlayNone OverlayKind = iota
	OverlayPasswordChange
	OverlayRoleSelection
	OverlayItemDetail
)

const itemOverlayPrefix = "item:"

// Overlay is the single active overlay of a page. Holding one value makes
// the overlays mutually exclusive.
type Overlay struct {
	kind   OverlayKind
	itemID string
}

func NoOverlay() Overlay { return Overlay{} }

func PasswordChange() Overlay { return Overlay{kind: OverlayPasswordChange} }

func RoleSelection() Overlay { return Overlay{kind: OverlayRoleSelection} }

// ItemDetail opens the detail overlay of the item with id. A blank id yields no overlay.
func ItemDetail(id string) Overlay {
	id = strings.TrimSpace(id)
	if id == "" {
		return NoOverlay()
	}
	return Overlay{kind: OverlayItemDetail, itemID: id}
}

func (o Overlay) Kind() OverlayKind { return o.kind }

func (o Overlay) IsNone() bool { return o.kind == OverlayNone }

// ItemID returns the item of a detail overlay.
func (o Overlay) ItemID() (string, bool) {
	if o.kind != OverlayItemDetail {
		return "", false
	}
	return o.itemID, true
}

// String returns the query parameter form understood by ParseOverlay.
func (o Overlay) String() string {
	switch o.kind {
	case OverlayPasswordChange:
		return "password"
	case OverlayRoleSelection:
		return "role"
	case OverlayItemDetail:
		return itemOverlayPrefix + o.itemID
	default:
		return ""
	}
}

// ParseOverlay reads the overlay query parameter. Unknown values mean no overlay.
func ParseOverlay(raw string) Overlay {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "password":
		return PasswordChange()
	case raw == "role":
		return RoleSelection()
	case strings.HasPrefix(raw, itemOverlayPrefix):
		return ItemDetail(strings.TrimPrefix(raw, itemOverlayPrefix))
	default:
		return NoOverlay()
	}
}

// OverlayState owns the active overlay; Set is its only setter.
type OverlayState struct {
	active Overlay
}

func (s *OverlayState) Set(o Overlay) { s.active = o }

func (s *OverlayState) Close() { s.active = NoOverlay() }

func (s *OverlayState) Active() Overlay { return s.active }
