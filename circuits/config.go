package circuits

// Artifact roles as understood by the Quantum service.
const (
	RoleVKey           = "vkey"
	RoleProof          = "proof"
	RolePis            = "pis"
	RoleReceipt        = "receipt"
	RoleCommonData     = "common_data"
	RoleVerifierOnly   = "verifier_only"
	RoleSg2            = "sg2"
	RoleProtocol       = "protocol"
	RoleInstances      = "instances"
	RolePcr0           = "pcr0"
	RoleAttestationDoc = "attestation_doc"
)

// DefaultRoot is the directory the scheme folders live under.
const DefaultRoot = "circuits"

var GnarkGroth16Metadata = &Metadata{
	Id:           "gnark_groth16",
	Registration: []Artifact{{RoleVKey, "vKey.bin"}},
	Submission:   []Artifact{{RoleProof, "proof.bin"}, {RolePis, "pis.json"}},
}

var SnarkJSGroth16Metadata = &Metadata{
	Id:           "snarkjs_groth16",
	Registration: []Artifact{{RoleVKey, "verification_key.json"}},
	Submission:   []Artifact{{RoleProof, "proof.json"}, {RolePis, "public.json"}},
}

var Risc0Metadata = &Metadata{
	Id:           "risc0",
	Registration: []Artifact{{RoleVKey, "method_id.json"}},
	Submission:   []Artifact{{RoleReceipt, "receipt.bin"}},
}

var Sp1Metadata = &Metadata{
	Id:           "sp1",
	Registration: []Artifact{{RoleVKey, "v_key.bin"}},
	Submission:   []Artifact{{RoleProof, "proof.bin"}},
}

var Plonky2Metadata = &Metadata{
	Id:           "plonky2",
	Registration: []Artifact{{RoleCommonData, "common_data.bin"}, {RoleVerifierOnly, "verifier_only.bin"}},
	Submission:   []Artifact{{RoleProof, "proof.bin"}},
}

var GnarkPlonkMetadata = &Metadata{
	Id:           "gnark_plonk",
	Registration: []Artifact{{RoleVKey, "vKey.bin"}},
	Submission:   []Artifact{{RoleProof, "proof.bin"}, {RolePis, "pis.json"}},
}

var Halo2KZGMetadata = &Metadata{
	Id:           "halo2_kzg",
	Registration: []Artifact{{RoleSg2, "sg2.json"}, {RoleProtocol, "protocol.json"}},
	Submission:   []Artifact{{RoleProof, "proof.bin"}, {RoleInstances, "instances.json"}},
}

var Halo2KZGEvmMetadata = &Metadata{
	Id:           "halo2_kzg_evm",
	Registration: []Artifact{{RoleSg2, "sg2.json"}, {RoleProtocol, "protocol.json"}},
	Submission:   []Artifact{{RoleProof, "proof.bin"}, {RoleInstances, "instances.json"}},
}

var NitroAttestationMetadata = &Metadata{
	Id:           "nitro_attestation",
	Registration: []Artifact{{RolePcr0, "pcr0.bin"}},
	Submission:   []Artifact{{RoleAttestationDoc, "attestation_doc.bin"}},
}

var All = []*Metadata{
	GnarkGroth16Metadata,
	SnarkJSGroth16Metadata,
	Risc0Metadata,
	Sp1Metadata,
	Plonky2Metadata,
	GnarkPlonkMetadata,
	Halo2KZGMetadata,
	Halo2KZGEvmMetadata,
	NitroAttestationMetadata,
}
