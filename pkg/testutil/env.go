package testutil

// Getenv returns an environment lookup function backed by a map, for
// injecting PATH and DESTDIR values without touching the process
// environment.
func Getenv(vars map[string]string) func(string) string {
	return func(key string) string {
		return vars[key]
	}
}
