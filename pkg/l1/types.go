// Package l1 defines how rover bridges are identified and discovered.
package l1

import "strings"

// RefType is the type segment of every rover bridge topic.
const RefType = "rover"

// ControllerRef is a reference to a rover bridge.
type ControllerRef struct {
	// ID is unique ID of the bridge, machine ID by default.
	ID string
}

// ParseRef parses a name produced by ControllerRef.Name.
func ParseRef(name string) (ControllerRef, bool) {
	items := strings.Split(name, "/")
	if len(items) != 2 || items[0] != RefType || items[1] == "" {
		return ControllerRef{}, false
	}
	return ControllerRef{ID: items[1]}, true
}

// Name retrieves the name from ref, used as topic prefix.
func (r ControllerRef) Name() string {
	return RefType + "/" + r.ID
}

// IsValid indicates ControllerRef is valid.
func (r ControllerRef) IsValid() bool {
	return r.ID != "" && !strings.ContainsAny(r.ID, "/+#")
}

// ControllerMeta provides metadata of a rover bridge.
type ControllerMeta struct {
	Description string            `json:"description,omitempty"`
	RoverAddr   string            `json:"rover_addr,omitempty"`
	Labels      map[string]string `json:"labels,omitempty"`
}

// ControllerInfo provides information of a rover bridge.
type ControllerInfo struct {
	Ref  ControllerRef
	Meta ControllerMeta
}
