package main

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/lunny/log"
	"github.com/urfave/cli/v2"
	"lukechampine.com/blake3"

	"github.com/TimothyStiles/molint/basis"
	"github.com/TimothyStiles/molint/integrals"
	"github.com/TimothyStiles/molint/system"
)

/******************************************************************************

This file contains the code that runs when the command line routines are run.
Argument flags and helper text are defined in main.go which then dispatches to
the corresponding function in this file.

	Top level commands:
		Compute
		Hash

	Helper functions

******************************************************************************/

/******************************************************************************

compute loads a basis set and a molecule, assembles the molecular system, and
computes the overlap, kinetic and nuclear attraction matrices. With the --eri
flag it also computes the electron repulsion tensor. Every result is written
into the output directory as JSON, so downstream SCF code in any language can
pick them up:

	molint compute -b sto-3g.json -m water.json -o out --eri

******************************************************************************/

func computeCommand(c *cli.Context) error {
	sys, err := loadMolecularSystem(c)
	if err != nil {
		return err
	}

	outputDir := c.String("o")
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	start := time.Now()
	results := map[string]interface{}{
		"overlap": integrals.Overlap(sys),
		"kinetic": integrals.Kinetic(sys),
		"nuclear": integrals.Nuclear(sys),
	}
	log.Infof("one electron integrals took %v", time.Since(start))

	if c.Bool("eri") {
		start = time.Now()
		results["eri"] = integrals.ERI(sys)
		log.Infof("electron repulsion tensor took %v", time.Since(start))
	}

	for name, result := range results {
		if err := writeResult(filepath.Join(outputDir, name+".json"), result); err != nil {
			return err
		}
	}
	return nil
}

/******************************************************************************

hash prints a BLAKE3 fingerprint of the assembled molecular system: the atoms
with their positions plus the flattened basis functions. Two systems with the
same fingerprint produce bitwise identical integral matrices, which makes the
fingerprint a cheap cache key for expensive ERI runs.

	molint hash -b sto-3g.json -m water.json

******************************************************************************/

func hashCommand(c *cli.Context) error {
	sys, err := loadMolecularSystem(c)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "%x\n", fingerprint(sys))
	return nil
}

// loadMolecularSystem assembles the molecular system named by the -b and -m
// flags shared by all commands.
func loadMolecularSystem(c *cli.Context) (*system.MolecularSystem, error) {
	basisSet, err := basis.Load(c.String("b"))
	if err != nil {
		return nil, err
	}
	atoms, err := system.LoadMolecule(c.String("m"))
	if err != nil {
		return nil, err
	}
	return system.NewSystem(atoms, basisSet)
}

// writeResult writes a computed matrix or tensor out as indented JSON.
func writeResult(path string, result interface{}) error {
	file, err := json.MarshalIndent(result, "", " ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, file, 0644)
}

// fingerprint hashes the canonical byte serialization of a molecular system.
func fingerprint(sys *system.MolecularSystem) [32]byte {
	hasher := blake3.New(32, nil)

	writeFloat := func(value float64) {
		var buffer [8]byte
		binary.LittleEndian.PutUint64(buffer[:], math.Float64bits(value))
		hasher.Write(buffer[:])
	}
	writeInt := func(value int) {
		var buffer [8]byte
		binary.LittleEndian.PutUint64(buffer[:], uint64(value))
		hasher.Write(buffer[:])
	}

	for _, atom := range sys.Atoms {
		writeInt(atom.Ordinal)
		writeFloat(atom.Position.X)
		writeFloat(atom.Position.Y)
		writeFloat(atom.Position.Z)
	}
	for _, function := range sys.Basis {
		writeInt(function.Angular[0])
		writeInt(function.Angular[1])
		writeInt(function.Angular[2])
		for k := 0; k < function.Primitives(); k++ {
			writeFloat(function.Coefficients[k])
			writeFloat(function.Exponents[k])
		}
	}

	var digest [32]byte
	hasher.Sum(digest[:0])
	return digest
}
