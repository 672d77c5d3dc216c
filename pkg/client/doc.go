// Package client calls the Here Comes the Bus SOAP API.
//
// A Client sends one SOAP 1.1 request per operation with the header set the
// official mobile app sends, checks the response for HTTP and SOAP faults,
// and hands the body to the assemblers in package hcb:
//
//	c := client.New(client.WithTimeout(10 * time.Second))
//	schoolID, err := c.GetSchoolID(ctx, "springfield")
//	account, err := c.GetParentInfo(ctx, schoolID, user, pass)
//	stops, err := c.GetStopInfo(ctx, schoolID, account.AccountID, studentID, client.AMID)
//
// A Client is safe for concurrent use.
package client
