// Package logger provides structured logging for gogskit using zerolog.
//
// The library has no global logger. Callers hand a *Logger to the HTTP
// client, which then logs every API call at debug level and failures at
// warn, with the request id, operation and redacted URI attached.
//
// # Configuration
//
//	logging:
//	  level: info      # trace, debug, info, warn, error, fatal or disabled
//	  format: json     # json or console
//	  output: stderr   # stderr, stdout or discard
package logger
