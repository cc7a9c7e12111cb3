package ku

import (
	"path/filepath"
)

const DefaultAndroidAPI = 28

const (
	EnvAndroidHome    = "ANDROID_HOME"
	EnvAndroidNDKHome = "ANDROID_NDK_HOME"
)

// ABIEnum is an Android ABI name, e.g. arm64-v8a.
type ABIEnum string

const (
	ABIArmeabiV7a ABIEnum = "armeabi-v7a"
	ABIArm64V8a   ABIEnum = "arm64-v8a"
	ABIX86        ABIEnum = "x86"
	ABIX86_64     ABIEnum = "x86_64"
)

// Used when `build_abis` is missing from the build config. Order matters.
var DefaultBuildABIs = []ABIEnum{
	ABIArmeabiV7a,
	ABIArm64V8a,
	ABIX86,
	ABIX86_64,
}

// Shared libs produced by the build driver for each ABI.
var JNILibFileNames = []string{
	"libonnxruntime.so",
	"libonnxruntime4j_jni.so",
}

const (
	DefaultPython = "python3"
	DefaultGradle = "gradle"

	gradleBuildFile    = "build-android.gradle"
	gradleSettingsFile = "settings-android.gradle"
)

// BuildDriverScript = ${RepoDir}/tools/ci_build/build.py
func BuildDriverScript(repoDir string) string {
	return filepath.Join(repoDir, "tools", "ci_build", "build.py")
}

// JavaRootDir = ${RepoDir}/java
func JavaRootDir(repoDir string) string {
	return filepath.Join(repoDir, "java")
}

// DefaultBuildDir = ${RepoDir}/build_android_aar
func DefaultBuildDir(repoDir string) string {
	return filepath.Join(repoDir, "build_android_aar")
}

// IntermediatesDir = ${BuildDir}/intermediates
func IntermediatesDir(buildDir string) string {
	return filepath.Join(buildDir, "intermediates")
}

// ABIBuildDir = ${BuildDir}/intermediates/${ABI}
func ABIBuildDir(buildDir string, abi ABIEnum) string {
	return filepath.Join(IntermediatesDir(buildDir), string(abi))
}

// AARDir = ${BuildDir}/intermediates/aar
// Used as Gradle's buildDir.
func AARDir(buildDir string) string {
	return filepath.Join(IntermediatesDir(buildDir), "aar")
}

// JNILibsDir = ${BuildDir}/intermediates/aar/jnilibs
func JNILibsDir(buildDir string) string {
	return filepath.Join(AARDir(buildDir), "jnilibs")
}

// JNILibsABIDir = ${BuildDir}/intermediates/aar/jnilibs/${ABI}
func JNILibsABIDir(buildDir string, abi ABIEnum) string {
	return filepath.Join(JNILibsDir(buildDir), string(abi))
}

// AARPublishDir = ${BuildDir}/aar_out
func AARPublishDir(buildDir string) string {
	return filepath.Join(buildDir, "aar_out")
}
