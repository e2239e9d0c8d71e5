// Package sections holds the configuration model shared by every page
// section: typed defaults, strict decoding of override documents, key-wise
// merging, editable field tags and the registry the HTTP layer resolves
// sections through.
package sections
