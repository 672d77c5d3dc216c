package soap

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/beevik/etree"
	"github.com/hcbtrack/hcb/pkg/calllog"
	"github.com/hcbtrack/hcb/pkg/logging"
	"github.com/hcbtrack/hcb/pkg/util"
	"github.com/hcbtrack/hcb/pkg/xmlquery"
)

// maxBodySize bounds request bodies read by the handler.
const maxBodySize = 10 << 20 // 10MB

// operation is an OperationConfig with its response resolved.
type operation struct {
	OperationConfig
	response []byte
	envelope bool // response is already a full envelope
	delay    time.Duration
}

// Handler serves canned responses for the service's SOAP operations. It
// stands in for the real endpoint in tests and local development.
type Handler struct {
	config     *Config
	operations []operation

	logger   *slog.Logger
	callLog  calllog.Logger
	loggerMu sync.RWMutex
}

// NewHandler creates a mock endpoint handler. Response files are read
// eagerly; an unreadable file or an operation without a name is an error.
func NewHandler(config *Config) (*Handler, error) {
	if config == nil {
		return nil, errors.New("mock config is required")
	}

	h := &Handler{
		config: config,
		logger: logging.Nop(),
	}

	for i, op := range config.Operations {
		resolved, err := resolveOperation(op, config.BaseDir)
		if err != nil {
			return nil, fmt.Errorf("operation %d (%s): %w", i, op.Name, err)
		}
		h.operations = append(h.operations, resolved)
	}

	return h, nil
}

func resolveOperation(op OperationConfig, baseDir string) (operation, error) {
	if op.Name == "" {
		return operation{}, errors.New("name is required")
	}

	resolved := operation{OperationConfig: op, response: []byte(op.Response)}

	if op.ResponseFile != "" {
		path, ok := util.ResolveFile(baseDir, op.ResponseFile)
		if !ok {
			return operation{}, fmt.Errorf("unsafe path in responseFile (traversal detected): %q", op.ResponseFile)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return operation{}, fmt.Errorf("failed to load response file %q: %w", path, err)
		}
		resolved.response = data
	}

	if op.Delay != "" {
		d, err := parseDuration(op.Delay)
		if err != nil {
			return operation{}, err
		}
		resolved.delay = d
	}

	if len(bytes.TrimSpace(resolved.response)) > 0 {
		doc, err := xmlquery.Parse(string(resolved.response))
		if err != nil {
			return operation{}, fmt.Errorf("response: %w", err)
		}
		resolved.envelope = xmlquery.LocalName(doc.Root().Tag) == "Envelope"
	}

	return resolved, nil
}

// SetLogger sets the operational logger.
func (h *Handler) SetLogger(logger *slog.Logger) {
	h.loggerMu.Lock()
	defer h.loggerMu.Unlock()
	if logger == nil {
		logger = logging.Nop()
	}
	h.logger = logger
}

// SetCallLog sets where received calls are recorded.
func (h *Handler) SetCallLog(l calllog.Logger) {
	h.loggerMu.Lock()
	defer h.loggerMu.Unlock()
	h.callLog = l
}

// Pattern returns the URL path this handler serves.
func (h *Handler) Pattern() string {
	if h.config.Path == "" {
		return DefaultPath
	}
	return h.config.Path
}

// ServeHTTP implements the http.Handler interface.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	startTime := time.Now()

	call := &calllog.Entry{
		Timestamp:  startTime,
		Headers:    r.Header.Clone(),
		RemoteAddr: r.RemoteAddr,
	}

	// Only accept POST for SOAP operations
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		call.ResponseStatus = http.StatusMethodNotAllowed
		h.finish(call, startTime)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	defer func() { _ = r.Body.Close() }()
	if err != nil {
		h.writeFault(w, call, &Fault{Code: "soap:Client", Message: "Failed to read request body"}, SOAP11)
		h.finish(call, startTime)
		return
	}

	doc, err := parseEnvelope(body)
	if err != nil {
		h.writeFault(w, call, &Fault{Code: "soap:Client", Message: "Failed to parse SOAP envelope: " + err.Error()}, SOAP11)
		h.finish(call, startTime)
		return
	}

	version := detectSOAPVersion(doc)
	call.SOAPVersion = string(version)
	call.SOAPAction = getSOAPAction(r, version)

	opName, params, err := h.extractOperation(doc, call.SOAPAction)
	if err != nil {
		h.writeFault(w, call, &Fault{Code: "soap:Client", Message: "Failed to determine operation: " + err.Error()}, version)
		h.finish(call, startTime)
		return
	}
	call.Operation = opName
	call.Params = params

	op := h.matchOperation(opName, doc)
	if op == nil {
		h.writeFault(w, call, &Fault{Code: "soap:Client", Message: "Unknown operation: " + opName}, version)
		h.finish(call, startTime)
		return
	}

	if op.delay > 0 {
		select {
		case <-time.After(op.delay):
		case <-r.Context().Done():
			call.ResponseStatus = statusClientClosedRequest
			h.finish(call, startTime)
			return
		}
	}

	if op.Fault != nil {
		h.writeFault(w, call, op.Fault, version)
		h.finish(call, startTime)
		return
	}

	h.writeResponse(w, call, op, version)
	h.finish(call, startTime)
}

// parseEnvelope parses a SOAP envelope from the request body.
func parseEnvelope(body []byte) (*etree.Document, error) {
	doc, err := xmlquery.Parse(string(body))
	if err != nil {
		return nil, err
	}

	if tag := xmlquery.LocalName(doc.Root().Tag); tag != "Envelope" {
		return nil, fmt.Errorf("root element must be Envelope, got %s", tag)
	}
	return doc, nil
}

// detectSOAPVersion detects the SOAP version from the envelope namespace.
func detectSOAPVersion(doc *etree.Document) SOAPVersion {
	root := doc.Root()
	if root == nil {
		return SOAP11
	}

	for _, attr := range root.Attr {
		if (attr.Space == "xmlns" || attr.Key == "xmlns") && attr.Value == SOAP12Namespace {
			return SOAP12
		}
	}

	if root.NamespaceURI() == SOAP12Namespace {
		return SOAP12
	}

	return SOAP11
}

// getSOAPAction extracts the SOAPAction from request headers.
func getSOAPAction(r *http.Request, version SOAPVersion) string {
	if version == SOAP12 {
		// SOAP 1.2 uses action parameter in Content-Type
		for _, part := range strings.Split(r.Header.Get("Content-Type"), ";") {
			part = strings.TrimSpace(part)
			if action, ok := strings.CutPrefix(part, "action="); ok {
				return strings.Trim(action, "\"")
			}
		}
	}

	return strings.Trim(r.Header.Get("SOAPAction"), "\"")
}

// extractOperation determines which operation was called and collects its
// parameters from the operation element in the Body.
func (h *Handler) extractOperation(doc *etree.Document, soapAction string) (string, map[string]string, error) {
	body := xmlquery.Element(doc, "Body")
	if body == nil {
		return "", nil, errors.New("SOAP Body not found")
	}

	children := body.ChildElements()
	if len(children) == 0 {
		return "", nil, errors.New("no operation element found in Body")
	}
	opElem := children[0]

	params := make(map[string]string)
	for _, p := range opElem.ChildElements() {
		params[xmlquery.LocalName(p.Tag)] = strings.TrimSpace(p.Text())
	}

	if soapAction != "" {
		for _, op := range h.operations {
			if op.SOAPAction != "" && op.SOAPAction == soapAction {
				return op.Name, params, nil
			}
		}
		if idx := strings.LastIndex(soapAction, "/"); idx >= 0 {
			name := soapAction[idx+1:]
			if h.hasOperation(name) {
				return name, params, nil
			}
		}
	}

	return xmlquery.LocalName(opElem.Tag), params, nil
}

func (h *Handler) hasOperation(name string) bool {
	for _, op := range h.operations {
		if op.Name == name {
			return true
		}
	}
	return false
}

// matchOperation returns the first operation named opName whose XPath
// conditions hold for doc.
func (h *Handler) matchOperation(opName string, doc *etree.Document) *operation {
	for i := range h.operations {
		op := &h.operations[i]
		if op.Name != opName {
			continue
		}
		if op.Match != nil && !xmlquery.MatchXPath(doc, op.Match.XPath) {
			continue
		}
		return op
	}
	return nil
}

// writeResponse writes a successful response, wrapping bodies that are not
// already an envelope.
func (h *Handler) writeResponse(w http.ResponseWriter, call *calllog.Entry, op *operation, version SOAPVersion) {
	var response bytes.Buffer
	contentType := SOAP11ContentType
	ns := SOAP11Namespace
	if version == SOAP12 {
		contentType = SOAP12ContentType
		ns = SOAP12Namespace
	}

	if op.envelope {
		response.Write(op.response)
	} else {
		response.WriteString(`<?xml version="1.0" encoding="utf-8"?>`)
		response.WriteString(`<s:Envelope xmlns:s="` + ns + `">`)
		response.WriteString(`<s:Body>`)
		response.Write(op.response)
		response.WriteString(`</s:Body>`)
		response.WriteString(`</s:Envelope>`)
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(response.Bytes())
	call.ResponseStatus = http.StatusOK
}

// writeFault writes a SOAP fault response.
func (h *Handler) writeFault(w http.ResponseWriter, call *calllog.Entry, fault *Fault, version SOAPVersion) {
	var faultXML []byte
	if version == SOAP12 {
		faultXML = buildFault12(fault)
		w.Header().Set("Content-Type", SOAP12ContentType)
	} else {
		faultXML = buildFault11(fault)
		w.Header().Set("Content-Type", SOAP11ContentType)
	}

	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write(faultXML)

	call.ResponseStatus = http.StatusInternalServerError
	call.Fault = true
	call.FaultCode = fault.Code
}

// buildFault11 builds a SOAP 1.1 fault response.
func buildFault11(fault *Fault) []byte {
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteString(`<soap:Envelope xmlns:soap="` + SOAP11Namespace + `">`)
	buf.WriteString(`<soap:Body>`)
	buf.WriteString(`<soap:Fault>`)
	buf.WriteString(`<faultcode>` + escapeXML(fault.Code) + `</faultcode>`)
	buf.WriteString(`<faultstring>` + escapeXML(fault.Message) + `</faultstring>`)
	if fault.Detail != "" {
		buf.WriteString(`<detail>` + fault.Detail + `</detail>`)
	}
	buf.WriteString(`</soap:Fault>`)
	buf.WriteString(`</soap:Body>`)
	buf.WriteString(`</soap:Envelope>`)
	return buf.Bytes()
}

// buildFault12 builds a SOAP 1.2 fault response.
func buildFault12(fault *Fault) []byte {
	// Map common fault codes to SOAP 1.2 codes
	code := fault.Code
	switch code {
	case "soap:Client", "Client":
		code = "soap:Sender"
	case "soap:Server", "Server":
		code = "soap:Receiver"
	}

	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteString(`<soap:Envelope xmlns:soap="` + SOAP12Namespace + `">`)
	buf.WriteString(`<soap:Body>`)
	buf.WriteString(`<soap:Fault>`)
	buf.WriteString(`<soap:Code><soap:Value>` + escapeXML(code) + `</soap:Value></soap:Code>`)
	buf.WriteString(`<soap:Reason><soap:Text xml:lang="en">` + escapeXML(fault.Message) + `</soap:Text></soap:Reason>`)
	if fault.Detail != "" {
		buf.WriteString(`<soap:Detail>` + fault.Detail + `</soap:Detail>`)
	}
	buf.WriteString(`</soap:Fault>`)
	buf.WriteString(`</soap:Body>`)
	buf.WriteString(`</soap:Envelope>`)
	return buf.Bytes()
}

// writeError writes a plain HTTP error response.
func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(message))
}

// statusClientClosedRequest marks calls abandoned by the client before a
// response was written (nginx convention).
const statusClientClosedRequest = 499

// finish records the call and logs it.
func (h *Handler) finish(call *calllog.Entry, startTime time.Time) {
	duration := time.Since(startTime)
	call.DurationMs = int(duration.Milliseconds())

	h.loggerMu.RLock()
	logger := h.logger
	callLog := h.callLog
	h.loggerMu.RUnlock()

	if callLog != nil {
		callLog.Log(call)
	}

	logger.Info("soap call",
		"operation", call.Operation,
		"status", call.ResponseStatus,
		"fault", call.FaultCode,
		"duration", duration,
	)
}

// escapeXML escapes special XML characters.
func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}

// parseDuration parses a duration string (supports "100ms", "1s", etc.)
func parseDuration(s string) (time.Duration, error) {
	// Try standard Go duration format first
	d, err := time.ParseDuration(s)
	if err == nil {
		return d, nil
	}

	// Try parsing as milliseconds number
	ms, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}

	return 0, fmt.Errorf("invalid duration: %s", s)
}
