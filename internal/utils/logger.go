package utils

import (
	"log"
	"strings"
)

// LogEvent writes one line per domain event. Keep messages summarized;
// seat codes and ids are fine, payload bodies are not. Background work
// without a request passes an empty id.
func LogEvent(requestID, module, action, message string) {
	rid := strings.TrimSpace(requestID)
	if rid == "" {
		rid = "-"
	}
	log.Printf("[%s] action=%s request_id=%s msg=%s", strings.ToUpper(module), action, rid, message)
}
