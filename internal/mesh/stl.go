package mesh

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	binaryHeaderSize = 80
	binaryFacetSize  = 50 // normal + 3 vertices (12 floats) + 2 attribute bytes
)

// DecodeSTL parses an STL artifact, accepting both the binary layout the
// backend writes and the ASCII layout some exporters produce.
func DecodeSTL(data []byte) (*Mesh, error) {
	if isASCIISTL(data) {
		return decodeASCII(data)
	}
	return decodeBinary(data)
}

// isASCIISTL distinguishes the two layouts. A binary file may legally begin
// with "solid" in its 80-byte header, so the facet keyword is checked too.
func isASCIISTL(data []byte) bool {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	trimmed := bytes.TrimLeft(head, " \t\r\n")
	return bytes.HasPrefix(trimmed, []byte("solid")) && bytes.Contains(head, []byte("facet"))
}

func decodeBinary(data []byte) (*Mesh, error) {
	if len(data) < binaryHeaderSize+4 {
		return nil, fmt.Errorf("%w: %d bytes is too short for a binary STL", ErrFormat, len(data))
	}
	count := binary.LittleEndian.Uint32(data[binaryHeaderSize:])
	body := data[binaryHeaderSize+4:]
	if uint64(len(body)) < uint64(count)*binaryFacetSize {
		return nil, fmt.Errorf("%w: header promises %d facets, body holds %d bytes",
			ErrFormat, count, len(body))
	}

	m := &Mesh{Triangles: make([]Triangle, count)}
	for i := range m.Triangles {
		rec := body[i*binaryFacetSize:]
		m.Triangles[i] = Triangle{
			Normal: readVec(rec, 0),
			V: [3]r3.Vec{
				readVec(rec, 12),
				readVec(rec, 24),
				readVec(rec, 36),
			},
		}
	}
	return m, nil
}

func readVec(rec []byte, off int) r3.Vec {
	return r3.Vec{
		X: float64(math.Float32frombits(binary.LittleEndian.Uint32(rec[off:]))),
		Y: float64(math.Float32frombits(binary.LittleEndian.Uint32(rec[off+4:]))),
		Z: float64(math.Float32frombits(binary.LittleEndian.Uint32(rec[off+8:]))),
	}
}

func decodeASCII(data []byte) (*Mesh, error) {
	m := &Mesh{}
	var (
		tri     Triangle
		nVerts  int
		inFacet bool
	)

	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "facet":
			inFacet = true
			nVerts = 0
			tri = Triangle{}
			if len(fields) >= 5 && fields[1] == "normal" {
				n, err := parseVec(fields[2], fields[3], fields[4])
				if err != nil {
					return nil, err
				}
				tri.Normal = n
			}
		case "vertex":
			if !inFacet || len(fields) < 4 {
				return nil, fmt.Errorf("%w: stray vertex line", ErrFormat)
			}
			if nVerts >= 3 {
				return nil, fmt.Errorf("%w: facet with more than three vertices", ErrFormat)
			}
			v, err := parseVec(fields[1], fields[2], fields[3])
			if err != nil {
				return nil, err
			}
			tri.V[nVerts] = v
			nVerts++
		case "endfacet":
			if nVerts != 3 {
				return nil, fmt.Errorf("%w: facet with %d vertices", ErrFormat, nVerts)
			}
			m.Triangles = append(m.Triangles, tri)
			inFacet = false
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if len(m.Triangles) == 0 {
		return nil, fmt.Errorf("%w: no facets", ErrFormat)
	}
	return m, nil
}

func parseVec(xs, ys, zs string) (r3.Vec, error) {
	x, errX := strconv.ParseFloat(xs, 64)
	y, errY := strconv.ParseFloat(ys, 64)
	z, errZ := strconv.ParseFloat(zs, 64)
	if errX != nil || errY != nil || errZ != nil {
		return r3.Vec{}, fmt.Errorf("%w: bad coordinate triple %q %q %q", ErrFormat, xs, ys, zs)
	}
	return r3.Vec{X: x, Y: y, Z: z}, nil
}
