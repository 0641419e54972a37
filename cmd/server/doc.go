// Command server runs the uncertainty propagation HTTP service.
package main
