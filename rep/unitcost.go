// This file contains the supply/mineral/gas cost table used by the build
// order extractor, grounded on the UnitID constants in repcmd/units.go.
// Costs below are the standard Brood War game values; units/buildings with
// no economically meaningful cost (critters, rescuables, spells) are
// omitted and treated as zero-cost by unitCost.

package rep

import "github.com/bwrepstat/parser/rep/repcmd"

// unitCostEntry describes the supply and resource cost of producing or
// constructing a unit.
type unitCostEntry struct {
	Supply   int // in half-steps, matching BW's internal supply accounting
	Minerals int
	Gas      int
}

// unitCosts maps a unit ID to its production cost. Only units and buildings
// that plausibly show up in a build order are listed.
var unitCosts = map[uint16]unitCostEntry{
	// Terran units
	0x00:                         {Supply: 2, Minerals: 50},  // Marine
	0x07:                         {Supply: 2, Minerals: 50},  // SCV
	0x02:                         {Supply: 4, Minerals: 75},  // Vulture
	0x0A:                         {Supply: 2, Minerals: 50, Gas: 25}, // Firebat (Gui Motang)
	0x20:                         {Supply: 2, Minerals: 50, Gas: 25}, // Firebat
	0x22:                         {Supply: 2, Minerals: 50, Gas: 25}, // Medic
	0x01:                         {Supply: 2, Minerals: 25, Gas: 75}, // Ghost
	0x05:                         {Supply: 4, Minerals: 150, Gas: 100}, // Siege Tank
	0x1E:                         {Supply: 4, Minerals: 150, Gas: 100}, // Siege Tank (siege mode)
	0x03:                         {Supply: 4, Minerals: 100, Gas: 50},  // Goliath
	0x08:                         {Supply: 4, Minerals: 150, Gas: 100}, // Wraith
	0x0B:                         {Supply: 4, Minerals: 100, Gas: 100}, // Dropship
	0x09:                         {Supply: 4, Minerals: 100, Gas: 225}, // Science Vessel
	0x0C:                         {Supply: 12, Minerals: 400, Gas: 300}, // Battlecruiser

	// Terran buildings
	repcmd.UnitIDCommandCenter:   {Minerals: 400},
	repcmd.UnitIDSupplyDepot:     {Minerals: 100},
	repcmd.UnitIDRefinery:        {Minerals: 100},
	repcmd.UnitIDBarracks:        {Minerals: 150},
	repcmd.UnitIDAcademy:         {Minerals: 150},
	repcmd.UnitIDFactory:         {Minerals: 200, Gas: 100},
	repcmd.UnitIDStarport:        {Minerals: 150, Gas: 100},
	repcmd.UnitIDControlTower:    {Minerals: 50, Gas: 50},
	repcmd.UnitIDScienceFacility: {Minerals: 100, Gas: 150},
	repcmd.UnitIDCovertOps:       {Minerals: 50, Gas: 50},
	repcmd.UnitIDPhysicsLab:      {Minerals: 50, Gas: 50},
	repcmd.UnitIDMachineShop:     {Minerals: 50, Gas: 50},
	repcmd.UnitIDEngineeringBay:  {Minerals: 125},
	repcmd.UnitIDArmory:          {Minerals: 100, Gas: 50},
	repcmd.UnitIDMissileTurret:   {Minerals: 75},
	repcmd.UnitIDBunker:          {Minerals: 100},
	repcmd.UnitIDComSat:          {Minerals: 50, Gas: 50},
	repcmd.UnitIDNuclearSilo:     {Minerals: 100, Gas: 100},

	// Zerg units (cost is charged to the morphing larva/drone's supply)
	0x25: {Supply: 1, Minerals: 25},        // Zergling
	0x26: {Supply: 2, Minerals: 75, Gas: 25}, // Hydralisk
	0x27: {Supply: 8, Minerals: 200, Gas: 200}, // Ultralisk
	0x29: {Supply: 2, Minerals: 50},        // Drone
	0x2A: {Minerals: 100},                  // Overlord
	0x2B: {Supply: 4, Minerals: 100, Gas: 100}, // Mutalisk

	// Zerg buildings
	repcmd.UnitIDHatchery:         {Minerals: 300},
	repcmd.UnitIDLair:             {Minerals: 150, Gas: 100},
	repcmd.UnitIDHive:             {Minerals: 200, Gas: 150},
	repcmd.UnitIDNydusCanal:       {Minerals: 150},
	repcmd.UnitIDHydraliskDen:     {Minerals: 100, Gas: 50},
	repcmd.UnitIDDefilerMound:     {Minerals: 100, Gas: 100},
	repcmd.UnitIDGreaterSpire:     {Minerals: 100, Gas: 150},
	repcmd.UnitIDQueensNest:       {Minerals: 150, Gas: 100},
	repcmd.UnitIDEvolutionChamber: {Minerals: 75},
	repcmd.UnitIDUltraliskCavern:  {Minerals: 150, Gas: 200},
	repcmd.UnitIDSpire:            {Minerals: 200, Gas: 150},
	repcmd.UnitIDSpawningPool:     {Minerals: 200},
	repcmd.UnitIDCreepColony:      {Minerals: 75},
	repcmd.UnitIDSporeColony:      {Minerals: 50},
	repcmd.UnitIDSunkenColony:     {Minerals: 50},
	repcmd.UnitIDExtractor:        {Minerals: 50},

	// Protoss units
	0x40: {Supply: 2, Minerals: 50},         // Probe
	0x41: {Supply: 4, Minerals: 100},        // Zealot
	0x42: {Supply: 4, Minerals: 125, Gas: 50}, // Dragoon
	0x3D: {Supply: 4, Minerals: 125, Gas: 100}, // Dark Templar
	0x43: {Supply: 4, Minerals: 50, Gas: 150},  // High Templar
	0x44: {Supply: 8, Minerals: 100, Gas: 300}, // Archon (two High Templar merged)

	// Protoss buildings
	repcmd.UnitIDNexus:              {Minerals: 400},
	repcmd.UnitIDRoboticsFacility:   {Minerals: 200, Gas: 200},
	repcmd.UnitIDPylon:              {Minerals: 100},
	repcmd.UnitIDAssimilator:        {Minerals: 100},
	repcmd.UnitIDObservatory:        {Minerals: 50, Gas: 100},
	repcmd.UnitIDGateway:            {Minerals: 150},
	repcmd.UnitIDPhotonCannon:       {Minerals: 150},
	repcmd.UnitIDCitadelOfAdun:      {Minerals: 150, Gas: 100},
	repcmd.UnitIDCyberneticsCore:    {Minerals: 200},
	repcmd.UnitIDTemplarArchives:    {Minerals: 150, Gas: 200},
	repcmd.UnitIDForge:              {Minerals: 150},
	repcmd.UnitIDStargate:           {Minerals: 150, Gas: 150},
	repcmd.UnitIDFleetBeacon:        {Minerals: 300, Gas: 200},
	repcmd.UnitIDArbiterTribunal:    {Minerals: 200, Gas: 150},
	repcmd.UnitIDRoboticsSupportBay: {Minerals: 150, Gas: 100},
	repcmd.UnitIDShieldBattery:      {Minerals: 100},
}

// unitCost returns the cost of the given unit, or the zero value if it's
// not in the table (e.g. a critter, a sub-unit or an unrecognized ID).
func unitCost(u *repcmd.Unit) unitCostEntry {
	if u == nil {
		return unitCostEntry{}
	}
	return unitCosts[u.ID]
}
