package app

import (
	"github.com/vk/fpgaflow/internal/registry"
	"github.com/vk/fpgaflow/tools/icepack"
	"github.com/vk/fpgaflow/tools/ise"
	"github.com/vk/fpgaflow/tools/nextpnr"
	"github.com/vk/fpgaflow/tools/yosys"
)

// coreTools is the definitive list of all tool stages that are compiled
// into the fpgaflow binary.
var coreTools = []registry.Module{
	&yosys.Module{},
	&ise.Module{},
	&nextpnr.Module{},
	&icepack.Module{},
}
