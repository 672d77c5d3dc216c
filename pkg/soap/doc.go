// Package soap speaks the service's SOAP 1.1 dialect.
//
// On the client side it builds request envelopes whose operation element
// carries positional parameters P1..Pn in the tempuri namespace, and turns
// SOAP 1.1 and 1.2 faults in a response into *FaultError.
//
// On the server side, Handler is a mock endpoint serving canned responses
// per operation. Operations are selected by the soapaction header or, when
// that is absent, by the first element of the Body. Several entries may
// share an operation name and be told apart by XPath conditions on the
// request:
//
//	cfg := &soap.Config{
//	    Operations: []soap.OperationConfig{
//	        {
//	            Name:  "s1157",
//	            Match: &soap.Match{XPath: map[string]string{"//P3": "bad-password"}},
//	            Fault: &soap.Fault{Code: "soap:Client", Message: "Invalid username or password"},
//	        },
//	        {Name: "s1157", ResponseFile: "s1157.xml"},
//	    },
//	}
//	h, err := soap.NewHandler(cfg)
//
// Responses that are not already a full envelope are wrapped in one.
package soap
