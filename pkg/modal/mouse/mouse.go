// Package mouse classifies terminal mouse events against rectangular hit
// regions. The modal host uses it to tell the dialog from the backdrop:
// clicks on the backdrop dismiss, hover and wheel only count over the
// dialog.
package mouse

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DoubleClickThreshold is the longest gap between two clicks on the same
// region that still counts as a double click.
const DoubleClickThreshold = 400 * time.Millisecond

// Rect is a screen rectangle. W and H are exclusive bounds.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) falls inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a named hit area.
type Region struct {
	ID   string
	Rect Rect
}

// HitMap holds regions in insertion order. Later regions win on overlap.
type HitMap struct {
	regions []Region
}

// NewHitMap returns an empty map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// AddRect registers a region.
func (hm *HitMap) AddRect(id string, x, y, w, h int) {
	hm.regions = append(hm.regions, Region{ID: id, Rect: Rect{X: x, Y: y, W: w, H: h}})
}

// Test returns the topmost region at (x, y), or nil.
func (hm *HitMap) Test(x, y int) *Region {
	for i := len(hm.regions) - 1; i >= 0; i-- {
		if hm.regions[i].Rect.Contains(x, y) {
			return &hm.regions[i]
		}
	}
	return nil
}

// Clear removes all regions. Call it before each render pass.
func (hm *HitMap) Clear() {
	hm.regions = hm.regions[:0]
}

// ActionType is the kind of mouse interaction.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionClick
	ActionDoubleClick
	ActionHover
	ActionScrollUp
	ActionScrollDown
)

// Action is a classified mouse event.
type Action struct {
	Type   ActionType
	Region *Region
	X, Y   int
}

// In reports whether the event landed on the region called id.
func (a Action) In(id string) bool {
	return a.Region != nil && a.Region.ID == id
}

// Handler tracks click timing on top of a HitMap.
type Handler struct {
	HitMap *HitMap

	lastClickID   string
	lastClickTime time.Time
	now           func() time.Time
}

// NewHandler returns a handler with an empty hit map.
func NewHandler() *Handler {
	return &Handler{HitMap: NewHitMap(), now: time.Now}
}

// click resolves a left click. A second click on the same region within
// DoubleClickThreshold is a double click; the click after that starts
// over.
func (h *Handler) click(x, y int) (*Region, bool) {
	region := h.HitMap.Test(x, y)
	now := h.now()

	id := ""
	if region != nil {
		id = region.ID
	}
	double := region != nil && id == h.lastClickID && now.Sub(h.lastClickTime) <= DoubleClickThreshold

	if double {
		h.lastClickID = ""
		h.lastClickTime = time.Time{}
	} else {
		h.lastClickID = id
		h.lastClickTime = now
	}
	return region, double
}

// HandleMouse classifies a bubbletea mouse message.
func (h *Handler) HandleMouse(msg tea.MouseMsg) Action {
	action := Action{X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			region, double := h.click(msg.X, msg.Y)
			action.Region = region
			action.Type = ActionClick
			if double {
				action.Type = ActionDoubleClick
			}
		case tea.MouseButtonWheelUp:
			action.Region = h.HitMap.Test(msg.X, msg.Y)
			action.Type = ActionScrollUp
		case tea.MouseButtonWheelDown:
			action.Region = h.HitMap.Test(msg.X, msg.Y)
			action.Type = ActionScrollDown
		}
	case tea.MouseActionMotion:
		action.Type = ActionHover
		action.Region = h.HitMap.Test(msg.X, msg.Y)
	}
	return action
}

// Clear drops all regions and click history. The host calls it whenever a
// different modal is mounted so clicks never pair across dialogs.
func (h *Handler) Clear() {
	h.HitMap.Clear()
	h.lastClickID = ""
	h.lastClickTime = time.Time{}
}
