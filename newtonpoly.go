/*
Package newtonpoly is a polynomial interpolation toolkit built around the Newton form.
It computes divided differences on Chebyshev or user supplied nodes, evaluates the
interpolating polynomial with the Horner-Newton scheme in float64 or arbitrary precision,
and exposes these operations through a command line tool and an MCP server.
*/
package newtonpoly

// Name is the name under which the command line tool and the MCP server identify themselves.
const Name = "newton"

// Version is the current version of the toolkit.
const Version = "0.3.0"
