package scenario

import (
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
	"cuelang.org/go/cue/token"
)

// LoadMode controls error handling during loading.
type LoadMode int

const (
	// LoadModeFailFast stops on the first error encountered.
	LoadModeFailFast LoadMode = iota
	// LoadModeCollectAll collects all errors before returning.
	LoadModeCollectAll
)

// LoadResult holds everything extracted from a scenario directory.
type LoadResult struct {
	Scenarios []Scenario
	CUEValue  cue.Value // raw value, for additional processing
	FileCount int
}

// LoadError is one loading or validation failure, with a CUE position
// when the source construct has one.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Error code constants, unified across CLI commands.
const (
	ErrCodeGeneric     = "E001" // generic/unknown error
	ErrCodeScanError   = "E002" // directory scan error
	ErrCodeNoFiles     = "E003" // no CUE files found
	ErrCodeLoadFailed  = "E004" // CUE load failed
	ErrCodeNotFound    = "E005" // path not found
	ErrCodeBuildFailed = "E006" // CUE build failed

	// Scenario validation errors
	ErrCodeMissingName   = "E101" // scenario has no name
	ErrCodeNoSteps       = "E102" // scenario has no steps
	ErrCodeUnknownOp     = "E103" // step names no known operation
	ErrCodeUnknownVector = "E104" // operand references an undefined vector
)

// LoadDir loads every scenario from the CUE package in dir. Scenarios
// live under the top-level "scenario" struct, keyed by label; labels
// fill in missing names.
func LoadDir(dir string, mode LoadMode) (*LoadResult, []error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("scenario directory not found: %s", dir)}}
	}
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing scenario directory: %v", err)}}
	}
	if !info.IsDir() {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("not a directory: %s", dir)}}
	}

	cueFiles, err := findCUEFiles(dir)
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeScanError, Message: fmt.Sprintf("error scanning directory: %v", err)}}
	}
	if len(cueFiles) == 0 {
		return nil, []error{&LoadError{Code: ErrCodeNoFiles, Message: fmt.Sprintf("no CUE files found in %s", dir)}}
	}

	ctx := cuecontext.New()
	instances := load.Instances([]string{"."}, &load.Config{Dir: dir, Package: "_"})
	if len(instances) == 0 {
		return nil, []error{&LoadError{Code: ErrCodeLoadFailed, Message: "no CUE instances loaded"}}
	}
	inst := instances[0]
	if inst.Err != nil {
		return nil, []error{&LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("loading CUE files: %v", inst.Err)}}
	}

	value := ctx.BuildInstance(inst)
	if err := value.Err(); err != nil {
		return nil, []error{&LoadError{Code: ErrCodeBuildFailed, Message: fmt.Sprintf("building CUE value: %v", err)}}
	}

	result := &LoadResult{CUEValue: value, FileCount: len(cueFiles)}
	var errs []error

	scenariosVal := value.LookupPath(cue.ParsePath("scenario"))
	if !scenariosVal.Exists() {
		return result, []error{&LoadError{Code: ErrCodeGeneric, Message: "no scenarios found (top-level \"scenario\" struct missing)"}}
	}

	iter, iterErr := scenariosVal.Fields()
	if iterErr != nil {
		return result, []error{&LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("iterating scenarios: %v", iterErr)}}
	}
	for iter.Next() {
		s, decodeErr := decode(iter.Value())
		if decodeErr != nil {
			errs = append(errs, &LoadError{
				Code:    ErrCodeGeneric,
				Message: fmt.Sprintf("scenario.%s: %v", iter.Label(), decodeErr),
				Pos:     iter.Value().Pos(),
			})
			if mode == LoadModeFailFast {
				return result, errs
			}
			continue
		}
		if s.Name == "" {
			s.Name = iter.Label()
		}
		if vErrs := validate(s); len(vErrs) > 0 {
			errs = append(errs, vErrs...)
			if mode == LoadModeFailFast {
				return result, errs
			}
			continue
		}
		result.Scenarios = append(result.Scenarios, *s)
	}

	if len(result.Scenarios) == 0 && len(errs) == 0 {
		errs = append(errs, &LoadError{Code: ErrCodeGeneric, Message: "no scenarios found in directory"})
	}
	return result, errs
}

func findCUEFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && filepath.Ext(path) == ".cue" {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
