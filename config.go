package ku

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/mgenware/ku-aar/io2"
	"github.com/zclconf/go-cty/cty"
)

// BuildConfig is the effective configuration of a single run.
type BuildConfig struct {
	AndroidSDKPath string
	AndroidNDKPath string

	// Example: Release, MinSizeRel
	BuildFlavor string
	BuildABIs   []ABIEnum
	// Includes the trailing --android_api=N.
	BuildParams []string
}

// buildConfigFile mirrors the keys of a config file.
// Pointers and nil slices tell a missing key from a zero value.
type buildConfigFile struct {
	BuildFlavor *string  `hcl:"build_flavor,optional"`
	BuildABIs   []string `hcl:"build_abis,optional"`
	BuildParams []string `hcl:"build_params,optional"`
	AndroidAPI  *int     `hcl:"android_api,optional"`

	// Unknown keys are ignored.
	Remain hcl.Body `hcl:",remain"`
}

// LoadBuildConfig reads the config file at `path`. JSON is assumed unless
// the file ends with `.hcl`.
func LoadBuildConfig(path, sdkPath, ndkPath string) (*BuildConfig, error) {
	absPath, err := io2.ResolvePath(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigNotFound, err)
	}
	if !io2.FileExists(absPath) {
		return nil, fmt.Errorf("%w: %s is not a file", ErrConfigNotFound, absPath)
	}

	parser := hclparse.NewParser()
	var file *hcl.File
	var diags hcl.Diagnostics
	var evalCtx *hcl.EvalContext
	if strings.EqualFold(filepath.Ext(absPath), ".hcl") {
		file, diags = parser.ParseHCLFile(absPath)
		evalCtx = configEvalContext(os.Environ())
	} else {
		// Nil context keeps JSON strings literal, "${" included.
		file, diags = parser.ParseJSONFile(absPath)
	}
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrConfigParse, diags.Error())
	}

	var raw buildConfigFile
	diags = gohcl.DecodeBody(file.Body, evalCtx, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrConfigInvalid, diags.Error())
	}
	return newBuildConfig(&raw, sdkPath, ndkPath)
}

func newBuildConfig(raw *buildConfigFile, sdkPath, ndkPath string) (*BuildConfig, error) {
	if raw.BuildFlavor == nil {
		return nil, fmt.Errorf("%w: build_flavor is required in the build config file", ErrConfigInvalid)
	}
	if raw.BuildParams == nil {
		return nil, fmt.Errorf("%w: build_params is required in the build config file", ErrConfigInvalid)
	}

	abis := DefaultBuildABIs
	if raw.BuildABIs != nil {
		abis = make([]ABIEnum, len(raw.BuildABIs))
		for i, abi := range raw.BuildABIs {
			abis[i] = ABIEnum(abi)
		}
	}

	api := DefaultAndroidAPI
	if raw.AndroidAPI != nil {
		api = *raw.AndroidAPI
	}
	params := make([]string, 0, len(raw.BuildParams)+1)
	params = append(params, raw.BuildParams...)
	params = append(params, "--android_api="+strconv.Itoa(api))

	return &BuildConfig{
		AndroidSDKPath: sdkPath,
		AndroidNDKPath: ndkPath,
		BuildFlavor:    *raw.BuildFlavor,
		// Copy so callers never alias DefaultBuildABIs.
		BuildABIs:   append([]ABIEnum(nil), abis...),
		BuildParams: params,
	}, nil
}

// Variables visible to expressions in .hcl config files.
func configEvalContext(environ []string) *hcl.EvalContext {
	env := map[string]cty.Value{}
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		env[key] = cty.StringVal(value)
	}

	abis := make([]cty.Value, len(DefaultBuildABIs))
	for i, abi := range DefaultBuildABIs {
		abis[i] = cty.StringVal(string(abi))
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env":                 cty.ObjectVal(env),
			"default_build_abis":  cty.ListVal(abis),
			"default_android_api": cty.NumberIntVal(DefaultAndroidAPI),
		},
	}
}
