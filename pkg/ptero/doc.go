// Package ptero defines the public surface of the Pterodactyl application
// API client: the Client interface, configuration, resource types, response
// envelopes, and the error taxonomy returned by every operation.
//
// Create clients with github.com/ptero-io/ptero/pkg/pteroclient.
package ptero
