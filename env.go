package ku

import "strings"

// OverlayEnv returns a copy of `environ` with the SDK and NDK variables
// pointing at the given paths. `environ` is left untouched.
func OverlayEnv(environ []string, sdkPath, ndkPath string) []string {
	overrides := map[string]string{
		EnvAndroidHome:    sdkPath,
		EnvAndroidNDKHome: ndkPath,
	}
	env := make([]string, 0, len(environ)+len(overrides))
	for _, kv := range environ {
		key, _, _ := strings.Cut(kv, "=")
		if _, ok := overrides[key]; ok {
			continue
		}
		env = append(env, kv)
	}
	// Fixed order keeps the result stable.
	env = append(env,
		EnvAndroidHome+"="+sdkPath,
		EnvAndroidNDKHome+"="+ndkPath,
	)
	return env
}
