// Package routes discovers the content routes of a documentation source
// directory and checks navigation links against them.
//
// A markdown file maps to a route the way the renderer serves it:
//
//	index.md            -> /
//	guide/index.md      -> /guide/
//	guide/install.md    -> /guide/install
//
// Links may carry the site base, a .md or .html suffix, a query and a
// #fragment; fragments are checked against heading IDs.
package routes
