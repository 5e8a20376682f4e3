// Package chem provides the data model for aqueous equilibrium systems.
//
// The package defines the two value-carrying types the solver consumes:
//
//   - [Species]: a dissolved chemical entity with a formal charge and an
//     equilibrium concentration slot
//   - [Reaction]: a reversible reaction as signed stoichiometric terms
//     plus an equilibrium constant
//
// Conservation-group membership is declared on each species (Groups)
// rather than inferred from its name, so "C2H3O2" counts both HC2H3O2
// and C2H3O2- only when both declare the fragment.
//
// # Example
//
//	ha := chem.New("HC2H3O2", 0, "C2H3O2")
//	h := chem.New("H+", +1)
//	a := chem.New("C2H3O2-", -1, "C2H3O2")
//	rxn, _ := chem.NewReaction(1.8e-5,
//		chem.Term{Species: ha, Coefficient: -1},
//		chem.Term{Species: h, Coefficient: 1},
//		chem.Term{Species: a, Coefficient: 1})
package chem
