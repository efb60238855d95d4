package i18n

import "errors"

var (
	ErrNilAdapter        = errors.New("translation adapter is nil")
	ErrNoTranslations    = errors.New("no translations found")
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")
	ErrFailedToReadFile  = errors.New("failed to read translation file")
	ErrLoadingCancelled  = errors.New("loading translations cancelled")
)
