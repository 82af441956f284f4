package classify

import (
	"fmt"
	"strings"

	"github.com/pquerna/otp"
)

// OTPAuthInfo carries the provisioning details parsed out of an
// otpauth:// URI so the report can show what the code enrolls.
type OTPAuthInfo struct {
	Issuer  string
	Account string
}

// InspectOTPAuth parses content that looks like an authenticator
// provisioning URI. It returns (nil, nil) for anything that is not
// otpauth://, and an error for an otpauth URI that will not scan into an
// authenticator app. Classification is unaffected either way.
func InspectOTPAuth(content string) (*OTPAuthInfo, error) {
	if !strings.HasPrefix(strings.ToLower(content), "otpauth://") {
		return nil, nil
	}

	key, err := otp.NewKeyFromURL(content)
	if err != nil {
		return nil, fmt.Errorf("content looks like an otpauth URL but will not enroll: %w", err)
	}

	return &OTPAuthInfo{
		Issuer:  key.Issuer(),
		Account: key.AccountName(),
	}, nil
}
