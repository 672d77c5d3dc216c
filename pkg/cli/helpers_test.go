package cli

import (
	"github.com/hcbtrack/hcb/pkg/fixtures"
	"github.com/hcbtrack/hcb/pkg/hcb"
)

func soapAccount() (*hcb.AccountResponse, error) {
	return hcb.ParseAccount(fixtures.Response(fixtures.OpLogin))
}
