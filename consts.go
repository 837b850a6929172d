package glog

const (
	// MessageKey is the reserved field name carrying the resolved log
	// message. Emission operations write it last, so a caller-added field
	// with the same name is silently overwritten (map-insert semantics).
	MessageKey = "msg"

	// ErrorKey is the field name used by the Err constructor. The zerolog
	// backend derives its chain enrichment keys from the field name.
	ErrorKey = "error"

	// DefaultHandler is the name of the output handler every
	// ZerologBackend owns from construction.
	DefaultHandler = "default"

	emptyString = ""
)

const (
	errMsgClosed           = "logging backend is closed"
	errMsgEmptyHandlerName = "handler name is empty"
	errMsgAmbiguousOutput  = "handler config sets both Writer and FilePath"
	errMsgBadConfigLevel   = "config level is not valid"
	errMsgConfigInvalid    = "handler config is invalid"
	errMsgPrimaryInvalid   = "primary config is invalid"
)
