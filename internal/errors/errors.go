// Package errors provides standardized error handling for applauncher.
// It defines the error kinds produced while scanning and loading application
// descriptors, reading configuration and launching commands, together with
// helpers for creating, wrapping and classifying them.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package errors that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Scan error kinds
	DirectoryUnreadable
	EntryUnreadable
	InvalidFileName
	// Descriptor error kinds
	DescriptorParseFailed
	MissingField
	// Config error kinds
	InvalidConfig
	ConfigNotFound
	// Launch error kinds
	SpawnFailed
)

// String returns a short name for the kind, used in log fields.
func (k ErrorKind) String() string {
	switch k {
	case DirectoryUnreadable:
		return "directory_unreadable"
	case EntryUnreadable:
		return "entry_unreadable"
	case InvalidFileName:
		return "invalid_file_name"
	case DescriptorParseFailed:
		return "descriptor_parse_failed"
	case MissingField:
		return "missing_field"
	case InvalidConfig:
		return "invalid_config"
	case ConfigNotFound:
		return "config_not_found"
	case SpawnFailed:
		return "spawn_failed"
	default:
		return "unknown"
	}
}

// Common error constants for frequently occurring errors
var (
	ErrInvalidConfig = NewConfigError("invalid configuration", "", InvalidConfig, nil)
	ErrMissingField  = NewDescriptorError("required field missing", "", "", nil)
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// FileError represents errors related to directory and descriptor file access
type FileError struct {
	ApplicationError
	path string
}

// NewFileError creates a new file error
func NewFileError(msg string, path string, kind ErrorKind, err error) *FileError {
	return &FileError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the file error message
func (e *FileError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the file path associated with the error
func (e *FileError) Path() string {
	return e.path
}

// DescriptorError reports a descriptor that parsed but lacks a required field.
type DescriptorError struct {
	ApplicationError
	path  string
	field string
}

// NewDescriptorError creates a new descriptor error of kind MissingField
func NewDescriptorError(msg string, path string, field string, err error) *DescriptorError {
	return &DescriptorError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: MissingField,
		},
		path:  path,
		field: field,
	}
}

// Error returns the descriptor error message
func (e *DescriptorError) Error() string {
	if e.field == "" {
		return e.ApplicationError.Error()
	}
	if e.path != "" {
		return fmt.Sprintf("%s: %s: %s", e.msg, e.path, e.field)
	}
	return fmt.Sprintf("%s: %s", e.msg, e.field)
}

// Is matches any other missing-field error so callers can test against ErrMissingField.
func (e *DescriptorError) Is(target error) bool {
	t, ok := target.(*DescriptorError)
	return ok && t.kind == e.kind
}

// Path returns the descriptor path
func (e *DescriptorError) Path() string {
	return e.path
}

// Field returns the name of the missing field
func (e *DescriptorError) Field() string {
	return e.field
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// LaunchError represents a failure to start an application command
type LaunchError struct {
	ApplicationError
	command string
}

// NewLaunchError creates a new launch error
func NewLaunchError(msg string, command string, err error) *LaunchError {
	return &LaunchError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: SpawnFailed,
		},
		command: command,
	}
}

// Error returns the launch error message
func (e *LaunchError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %q: %v", e.msg, e.command, e.err)
	}
	return fmt.Sprintf("%s: %q", e.msg, e.command)
}

// Command returns the command that failed to start
func (e *LaunchError) Command() string {
	return e.command
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

type kinded interface {
	Kind() ErrorKind
}

// KindOf returns the kind of the first classified error in err's chain,
// or Unknown.
func KindOf(err error) ErrorKind {
	for err != nil {
		if k, ok := err.(kinded); ok && k.Kind() != Unknown {
			return k.Kind()
		}
		err = errors.Unwrap(err)
	}
	return Unknown
}

// IsMissingField checks if the error is a missing descriptor field error
func IsMissingField(err error) bool {
	var descErr *DescriptorError
	return errors.As(err, &descErr)
}

// IsParseFailed checks if the error is a descriptor parse failure
func IsParseFailed(err error) bool {
	var fileErr *FileError
	if errors.As(err, &fileErr) {
		return fileErr.Kind() == DescriptorParseFailed
	}
	return false
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}

// IsSpawnFailed checks if the error is a launch failure
func IsSpawnFailed(err error) bool {
	var launchErr *LaunchError
	return errors.As(err, &launchErr)
}
