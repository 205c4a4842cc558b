package rhttp

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// MethodOverrideHeader names the header whose value, when non-empty, replaces
// the transport method during action resolution.
const MethodOverrideHeader = "X-Http-Method-Override"

// ActionMap maps an effective HTTP method to the name of the logical action
// that handles it.
type ActionMap map[string]string

// DefaultActionMap returns the conventional RESTful method-to-action mapping.
func DefaultActionMap() ActionMap {
	return ActionMap{
		"GET":    "index",
		"POST":   "create",
		"PUT":    "update",
		"DELETE": "delete",
	}
}

// Methods returns the mapped methods sorted alphabetically, as listed in the
// Allow header of a 405 response.
func (m ActionMap) Methods() []string {
	methods := lo.Keys(m)
	sort.Strings(methods)

	return methods
}

// EffectiveMethod computes the method used for action resolution: the
// uppercased override when non-empty, else the uppercased transport method.
func EffectiveMethod(method, override string) string {
	if override != "" {
		return strings.ToUpper(override)
	}

	return strings.ToUpper(method)
}

// ResolveAction resolves the effective method to an action name. The second
// return is false when the effective method has no mapping, in which case the
// caller must answer 405 with an Allow header listing [ActionMap.Methods].
func ResolveAction(method, override string, actions ActionMap) (string, bool) {
	action, ok := actions[EffectiveMethod(method, override)]
	return action, ok
}
