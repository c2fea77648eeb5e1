package system

// DefaultUserEnv are consulted in order when no session user is found
var DefaultUserEnv = []string{"USERNAME", "USER", "LOGNAME"}

// ResolveUser returns the user attached to the controlling session, the
// first non-empty variable of envKeys, or UnknownUser.
func ResolveUser(p Platform, envKeys []string) string {
	name, err := p.SessionUser()
	if err == nil && name != "" {
		return name
	}
	if envKeys == nil {
		envKeys = DefaultUserEnv
	}
	for _, key := range envKeys {
		if v := p.Getenv(key); v != "" {
			fallback("user", err, key)
			return v
		}
	}
	fallback("user", err, UnknownUser)
	return UnknownUser
}
