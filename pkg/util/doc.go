// Package util provides small helpers shared across hcb packages.
//
//   - SafeFilePath / SafeFilePathAllowAbsolute reject path traversal in
//     user-supplied fixture and response file paths
//   - TruncateBody caps SOAP bodies before they are logged
package util
