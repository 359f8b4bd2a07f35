// Package lts builds and indexes labelled transition systems.
package lts
