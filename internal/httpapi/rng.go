package httpapi

import (
	"math/rand"
	"net/http"
	"time"
)

// rngFor seeds a per-request generator from the wall clock, the same
// unseeded-at-startup approach original_source/app.py's random.shuffle
// relies on implicitly (Python seeds its global RNG from OS entropy once
// at import time); here every call gets its own source instead of sharing
// process-global state.
func rngFor(_ *http.Request) *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
