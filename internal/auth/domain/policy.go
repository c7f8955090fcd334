package domain

import (
	"net/http"
	"strings"
)

// AccessKind classifies what a rule demands from the caller.
type AccessKind int

const (
	// AccessKindPermitAll lets every request through, anonymous included.
	AccessKindPermitAll AccessKind = iota

	// AccessKindAuthenticated requires any authenticated principal.
	AccessKindAuthenticated

	// AccessKindAnyRole requires a principal holding one of the listed roles.
	AccessKindAnyRole
)

// Access is the requirement attached to a rule.
type Access struct {
	Kind  AccessKind
	Roles []Role
}

// PermitAll allows anonymous callers.
func PermitAll() Access {
	return Access{Kind: AccessKindPermitAll}
}

// RequireAuthenticated allows any authenticated principal.
func RequireAuthenticated() Access {
	return Access{Kind: AccessKindAuthenticated}
}

// RequireAnyRole allows principals holding one of roles.
func RequireAnyRole(roles ...Role) Access {
	return Access{Kind: AccessKindAnyRole, Roles: roles}
}

// String renders the access requirement for route listings.
func (a Access) String() string {
	switch a.Kind {
	case AccessKindPermitAll:
		return "permitAll"
	case AccessKindAuthenticated:
		return "authenticated"
	default:
		names := make([]string, 0, len(a.Roles))
		for _, role := range a.Roles {
			names = append(names, role.String())
		}
		return "anyRole(" + strings.Join(names, ",") + ")"
	}
}

// Rule grants Access to requests whose path matches Pattern and whose method is
// one of Methods. An empty Methods list matches every method.
//
// Pattern syntax:
//   - "/health" matches only "/health"
//   - "/catalog/**" matches "/catalog" and everything below it
//   - "/catalog/*" matches exactly one segment below "/catalog"
type Rule struct {
	Pattern string
	Methods []string
	Access  Access
}

// Matches reports whether the rule applies to the request.
func (r Rule) Matches(method, path string) bool {
	if len(r.Methods) > 0 {
		found := false
		for _, m := range r.Methods {
			if strings.EqualFold(m, method) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return matchPath(r.Pattern, path)
}

// Decision is the outcome of evaluating the policy for one request.
type Decision int

const (
	// DecisionAllow lets the request reach its handler.
	DecisionAllow Decision = iota

	// DecisionUnauthenticated rejects an anonymous caller on a protected rule (401).
	DecisionUnauthenticated

	// DecisionForbidden rejects a principal that lacks the required role (403).
	DecisionForbidden
)

// String returns a log-friendly name.
func (d Decision) String() string {
	switch d {
	case DecisionAllow:
		return "allow"
	case DecisionUnauthenticated:
		return "unauthenticated"
	default:
		return "forbidden"
	}
}

// fallbackRule applies when no rule in the table matches.
var fallbackRule = Rule{Pattern: "/**", Access: RequireAuthenticated()}

// Policy is an ordered rule table evaluated first-match-wins.
type Policy struct {
	rules []Rule
}

// NewPolicy builds a policy from rules in priority order.
func NewPolicy(rules ...Rule) *Policy {
	return &Policy{rules: rules}
}

// DefaultPolicy returns the catalog service's route table. In production the
// route documentation is restricted to admins.
func DefaultPolicy(production bool) *Policy {
	docsAccess := PermitAll()
	if production {
		docsAccess = RequireAnyRole(RoleAdmin)
	}

	return NewPolicy(
		Rule{Pattern: "/health", Access: PermitAll()},
		Rule{Pattern: "/ready", Access: PermitAll()},
		Rule{Pattern: "/auth/**", Access: PermitAll()},
		Rule{Pattern: "/docs/**", Access: docsAccess},
		Rule{
			Pattern: "/catalog/**",
			Methods: []string{http.MethodGet},
			Access:  RequireAnyRole(RoleAdmin, RoleUser),
		},
		Rule{
			Pattern: "/catalog/**",
			Methods: []string{http.MethodPost, http.MethodPut, http.MethodDelete},
			Access:  RequireAnyRole(RoleAdmin),
		},
	)
}

// Rules returns a copy of the rule table followed by the fallback rule.
func (p *Policy) Rules() []Rule {
	rules := make([]Rule, 0, len(p.rules)+1)
	rules = append(rules, p.rules...)
	return append(rules, fallbackRule)
}

// Match returns the first rule matching the request, or the fallback rule.
func (p *Policy) Match(method, path string) Rule {
	for _, rule := range p.rules {
		if rule.Matches(method, path) {
			return rule
		}
	}
	return fallbackRule
}

// Evaluate decides whether auth may perform method on path.
func (p *Policy) Evaluate(method, path string, auth Authentication) Decision {
	rule := p.Match(method, path)

	if rule.Access.Kind == AccessKindPermitAll {
		return DecisionAllow
	}

	principal, ok := PrincipalOf(auth)
	if !ok {
		return DecisionUnauthenticated
	}

	if rule.Access.Kind == AccessKindAuthenticated {
		return DecisionAllow
	}

	if principal.HasAnyRole(rule.Access.Roles...) {
		return DecisionAllow
	}
	return DecisionForbidden
}

// matchPath checks if the request path matches the rule pattern.
// Supports two kinds of wildcards:
//  1. Trailing "/**" matches the prefix itself and any path below it
//  2. "*" as a whole segment matches exactly one segment
//
// Examples:
//   - "/catalog/**" matches "/catalog", "/catalog/42" and "/catalog/42/stock"
//   - "/catalog/*" matches "/catalog/42" but NOT "/catalog" or "/catalog/42/stock"
func matchPath(pattern, requestPath string) bool {
	if pattern == "/**" {
		return true
	}

	// Trailing wildcard (/**): prefix match on a segment boundary
	if strings.HasSuffix(pattern, "/**") {
		prefix := strings.TrimSuffix(pattern, "/**")
		return requestPath == prefix || strings.HasPrefix(requestPath, prefix+"/")
	}

	// No wildcard: exact match required
	if !strings.Contains(pattern, "*") {
		return pattern == requestPath
	}

	// Mid-path wildcards: segment-by-segment matching
	patternParts := strings.Split(pattern, "/")
	requestParts := strings.Split(requestPath, "/")

	if len(patternParts) != len(requestParts) {
		return false
	}

	for i := range patternParts {
		if patternParts[i] == "*" {
			if requestParts[i] == "" {
				return false
			}
			continue
		}
		if patternParts[i] != requestParts[i] {
			return false
		}
	}

	return true
}
