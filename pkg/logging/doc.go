// Package logging builds the log/slog loggers used across hcb.
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.ParseLevel(cfg.Log.Level),
//	    Format: logging.ParseFormat(cfg.Log.Format),
//	})
//	logger.Debug("soap request", "operation", "s1157")
//
// Components accept a *slog.Logger through an option or setter and fall
// back to Nop when none is given. The parsing packages (xmlquery, coerce,
// hcb) never log.
package logging
