package flows

import "fmt"

// iseFlow builds a Xilinx bitstream with the ISE toolchain. The yosys front
// end is only part of the graph when the project explicitly selects it;
// otherwise ISE performs synthesis itself, or a pre-built netlist is used.
var iseFlow = Flow{
	Name: "ise",
	Stages: []StageDescriptor{
		{
			Tool: "yosys",
			Next: []string{"ise"},
			Options: map[string]string{
				"arch":          "xilinx",
				"output_format": "edif",
			},
		},
		{Tool: "ise"},
	},
	Elide: elideIseSynth,
}

// elideIseSynth maps the "synth" flow option onto the yosys stage's fate.
// The empty value and "ise" mean ISE synthesizes internally, "none" means a
// pre-built netlist is supplied with the project. Anything else fails
// closed instead of silently running the default path.
func elideIseSynth(opts map[string]string, stage StageDescriptor) (Decision, error) {
	if stage.Tool != "yosys" {
		return Keep, nil
	}
	switch opts["synth"] {
	case "yosys":
		return Keep, nil
	case "", "ise":
		return Superseded, nil
	case "none":
		return External, nil
	default:
		return Keep, fmt.Errorf("unsupported synth tool %q for the ise flow", opts["synth"])
	}
}

// icestormFlow builds an iCE40 bitstream with the open icestorm toolchain:
// yosys synthesis, nextpnr place & route, icepack bitstream packing.
var icestormFlow = Flow{
	Name: "icestorm",
	Stages: []StageDescriptor{
		{
			Tool: "yosys",
			Next: []string{"nextpnr"},
			Options: map[string]string{
				"arch":          "ice40",
				"output_format": "json",
			},
		},
		{
			Tool:    "nextpnr",
			Next:    []string{"icepack"},
			Options: map[string]string{"arch": "ice40"},
		},
		{Tool: "icepack"},
	},
}
