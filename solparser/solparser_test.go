package solparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleContract = `// SPDX-License-Identifier: MIT
pragma solidity ^0.8.19;

import "./interfaces/IToken.sol";
import {Ownable} from "@openzeppelin/contracts/access/Ownable.sol";
import "../utils/Math.sol" as Math;

contract Token is Ownable {
    uint256 public totalSupply;
}
`

func TestParse_Contract_ExtractsImportsInSourceOrder(t *testing.T) {
	imports, _ := New().Parse(sampleContract, "/project/contracts/Token.sol")

	assert.Equal(t, []string{
		"./interfaces/IToken.sol",
		"@openzeppelin/contracts/access/Ownable.sol",
		"../utils/Math.sol",
	}, imports)
}

func TestParse_Contract_ExtractsVersionPragma(t *testing.T) {
	_, pragmas := New().Parse(sampleContract, "/project/contracts/Token.sol")

	assert.Equal(t, []string{"^0.8.19"}, pragmas)
}

func TestParse_VersionRangePragma_KeptWhole(t *testing.T) {
	source := "pragma solidity >=0.6.0 <0.9.0;\n"

	_, pragmas := New().Parse(source, "/project/A.sol")
	assert.Equal(t, []string{">=0.6.0 <0.9.0"}, pragmas)
}

func TestParse_NonVersionPragmas_Skipped(t *testing.T) {
	source := "pragma solidity ^0.8.0;\npragma abicoder v2;\n"

	_, pragmas := New().Parse(source, "/project/A.sol")
	assert.Equal(t, []string{"^0.8.0"}, pragmas)
}

func TestParse_NoImports_ReturnsEmptyLists(t *testing.T) {
	imports, pragmas := New().Parse("contract Empty {}\n", "/project/Empty.sol")

	assert.Empty(t, imports)
	assert.Empty(t, pragmas)
}

func TestParse_MalformedSource_TotalAndBestEffort(t *testing.T) {
	source := "pragma solidity ^0.7.0;\nimport \"./A.sol\";\ncontract {{{ not solidity"

	imports, pragmas := New().Parse(source, "/project/Broken.sol")
	assert.Contains(t, imports, "./A.sol")
	assert.Contains(t, pragmas, "^0.7.0")
}

func TestParse_Deterministic(t *testing.T) {
	p := New()
	firstImports, firstPragmas := p.Parse(sampleContract, "/project/Token.sol")
	secondImports, secondPragmas := p.Parse(sampleContract, "/project/Token.sol")

	assert.Equal(t, firstImports, secondImports)
	assert.Equal(t, firstPragmas, secondPragmas)
}

func TestScan_FallbackRecognizesCommonSpellings(t *testing.T) {
	imports, pragmas := scan(sampleContract)

	assert.Equal(t, []string{
		"./interfaces/IToken.sol",
		"@openzeppelin/contracts/access/Ownable.sol",
		"../utils/Math.sol",
	}, imports)
	assert.Equal(t, []string{"^0.8.19"}, pragmas)
}
