package parser

type ExtentStat struct {
	Type          string `json:"type"`
	VirtualOffset int64  `json:"VirtualOffset"`
	Size          int64  `json:"Size"`
	Filename      string `json:"Filename"`
}

type VMDKStats struct {
	CreateType  string       `json:"CreateType"`
	AdapterType string       `json:"AdapterType"`
	Cylinders   int64        `json:"Cylinders"`
	Heads       int          `json:"Heads"`
	Sectors     int          `json:"Sectors"`
	TotalSize   int64        `json:"TotalSize"`
	Extents     []ExtentStat `json:"Extents"`
}

func (self *Descriptor) Stats() VMDKStats {
	res := VMDKStats{
		CreateType:  self.CreateType,
		AdapterType: self.AdapterType,
		Cylinders:   self.Cylinders,
		Heads:       self.Heads,
		Sectors:     self.Sectors,
	}

	for _, e := range self.Extents {
		size := e.Sectors * SECTOR_SIZE
		res.Extents = append(res.Extents, ExtentStat{
			Type:          e.Type,
			VirtualOffset: res.TotalSize,
			Size:          size,
			Filename:      e.Filename,
		})
		res.TotalSize += size
	}

	return res
}
