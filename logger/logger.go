package logger

import (
	"log"
	"os"
)

// ProgressLogger logs the main steps of the style and layout updates.
var ProgressLogger = log.New(os.Stdout, "cssom.progress: ", log.LstdFlags)

// WarningLogger emits a warning for each non fatal error, like a failed
// standalone style computation or a query for an unsupported property.
var WarningLogger = log.New(os.Stdout, "cssom.warning: ", log.Lmsgprefix)
