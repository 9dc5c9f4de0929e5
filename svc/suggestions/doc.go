// Package suggestions loads "you may also like" listings for an animal
// detail page from the random-animals API over HTTP.
package suggestions
