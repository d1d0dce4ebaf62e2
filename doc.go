/*
Package slider2d implements the interaction core of a two dimensional slider:
a square canvas on which a handle is dragged to pick a point. While dragging,
the handle is attracted by a fixed 5x5 grid of magnets, and the picked point
can be scaled to a virtual coordinate space independent of the canvas size.

The package provides a command line interface which either opens an
interactive window or replays JSON event scripts and writes back a trace of
the control state. To check the supported commands type:

	$ slider2d --help

In case you wish to drive the controller from your own event source here is a simple example:

	package main

	import (
		"fmt"
		"log"

		"github.com/esimov/slider2d"
	)

	func main() {
		c, err := slider2d.New(slider2d.Config{
			Extent:        slider2d.Ext(400, 400),
			SnapTolerance: slider2d.DefaultSnapTolerance,
		})
		if err != nil {
			log.Fatal(err)
		}

		c.OnDragBegin()
		c.OnDragChange(slider2d.Pt(120, 40), true)
		snap := c.OnDragEnd(slider2d.Pt(199, 1), true)

		fmt.Println(snap.Offset, snap.Snapped) // (200.00, 0.00) true
	}
*/
package slider2d
