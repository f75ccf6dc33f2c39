// Package security implements the auth ports: JWT signing and verification
// with golang-jwt and bcrypt password hashing.
package security
