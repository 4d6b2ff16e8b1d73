package ring

import "errors"

// ErrMalformedSignature indicates a structural contract violation: a
// ring size below 2, an s_vec of the wrong length, a zero scalar, or
// (for LSAG) a key image at infinity. A verifier treats these exactly
// like a closed-but-wrong challenge chain: rejection, never a panic.
var ErrMalformedSignature = errors.New("ring: malformed signature")

// ErrRingSigVerify indicates the basic ring signature's challenge
// chain did not close.
var ErrRingSigVerify = errors.New("ring: signature verification failed")

// ErrLSAGVerify indicates the LSAG's challenge chain did not close.
var ErrLSAGVerify = errors.New("ring: LSAG verification failed")
