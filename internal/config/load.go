package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	ferrors "git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
)

// Loader reads declaration files from disk and resolves them.
type Loader struct {
	// EnvFiles are dotenv files consulted for ${VAR} expansion when the
	// process environment has no value. Later files override earlier ones;
	// missing files are skipped. The process environment is never modified.
	EnvFiles []string

	lookupEnv func(string) (string, bool)
}

// NewLoader returns a Loader using .env and .env.local from the working
// directory.
func NewLoader() *Loader {
	return &Loader{
		EnvFiles:  []string{".env", ".env.local"},
		lookupEnv: os.LookupEnv,
	}
}

// Load resolves the declaration files at paths with a default Loader.
func Load(paths ...string) (*SiteConfig, *Result, error) {
	return NewLoader().Load(paths...)
}

// Load reads, merges and validates the declaration files in order.
// Errors are ClassifiedErrors: CategoryNotFound for missing files,
// CategoryConfig for unreadable or unparsable input and CategoryValidation
// (wrapping ValidationErrors) for rule violations.
func (l *Loader) Load(paths ...string) (*SiteConfig, *Result, error) {
	decls, res, err := l.ReadDeclarations(paths...)
	if err != nil {
		return nil, res, err
	}

	cfg, rres, err := Resolve(decls...)
	res.Warnings = append(res.Warnings, rres.Warnings...)
	if err != nil {
		var verr ValidationErrors
		if errors.As(err, &verr) {
			return nil, res, ferrors.WrapError(verr, ferrors.CategoryValidation, "site configuration is invalid").
				Fatal().
				WithContext("sources", res.Sources).
				WithContext("errors", len(verr)).
				Build()
		}
		return nil, res, ferrors.WrapError(err, ferrors.CategoryInternal, "resolve site configuration").Fatal().Build()
	}
	return cfg, res, nil
}

// ReadDeclarations reads and parses each file after expanding ${VAR}
// references.
func (l *Loader) ReadDeclarations(paths ...string) ([]Declaration, *Result, error) {
	res := &Result{}
	if len(paths) == 0 {
		return nil, res, ferrors.ConfigError("no declaration files given").Build()
	}

	dotenv, envFiles, err := l.readEnvFiles()
	res.EnvFiles = envFiles
	if err != nil {
		return nil, res, err
	}
	expand := func(key string) string {
		if key == "$" {
			return "$" // $$ escapes a literal dollar
		}
		if v, ok := l.lookup(key); ok {
			return v
		}
		return dotenv[key]
	}

	decls := make([]Declaration, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, res, ferrors.WrapError(err, ferrors.CategoryNotFound, "declaration file not found").
					WithContext("path", p).Build()
			}
			return nil, res, ferrors.WrapError(err, ferrors.CategoryFileSystem, "read declaration file").
				WithContext("path", p).Build()
		}
		decl, err := ParseDeclaration([]byte(os.Expand(string(data), expand)))
		if err != nil {
			return nil, res, ferrors.WrapError(err, ferrors.CategoryConfig, "parse declaration file").
				Fatal().WithContext("path", p).Build()
		}
		decls = append(decls, decl)
		res.Sources = append(res.Sources, p)
	}
	return decls, res, nil
}

func (l *Loader) lookup(key string) (string, bool) {
	if l.lookupEnv == nil {
		return os.LookupEnv(key)
	}
	return l.lookupEnv(key)
}

func (l *Loader) readEnvFiles() (map[string]string, []string, error) {
	var existing []string
	for _, f := range l.EnvFiles {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return map[string]string{}, nil, nil
	}
	env, err := godotenv.Read(existing...)
	if err != nil {
		return nil, existing, ferrors.WrapError(err, ferrors.CategoryConfig, "parse dotenv file").
			Fatal().WithContext("files", existing).Build()
	}
	return env, existing, nil
}
