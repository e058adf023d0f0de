// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sse

// registerCatalog binds every intrinsic of the package. Immediate forms are
// registered once per immediate value listed.
func registerCatalog() {
	// 128-bit integer arithmetic
	register(
		fn2("_mm_add_epi8", MmAddEpi8),
		fn2("_mm_add_epi16", MmAddEpi16),
		fn2("_mm_add_epi32", MmAddEpi32),
		fn2("_mm_add_epi64", MmAddEpi64),
		fn2("_mm_sub_epi8", MmSubEpi8),
		fn2("_mm_sub_epi16", MmSubEpi16),
		fn2("_mm_sub_epi32", MmSubEpi32),
		fn2("_mm_sub_epi64", MmSubEpi64),
		fn2("_mm_adds_epi8", MmAddsEpi8),
		fn2("_mm_adds_epi16", MmAddsEpi16),
		fn2("_mm_adds_epu8", MmAddsEpu8),
		fn2("_mm_adds_epu16", MmAddsEpu16),
		fn2("_mm_subs_epi8", MmSubsEpi8),
		fn2("_mm_subs_epi16", MmSubsEpi16),
		fn2("_mm_subs_epu8", MmSubsEpu8),
		fn2("_mm_subs_epu16", MmSubsEpu16),
		fn2("_mm_avg_epu8", MmAvgEpu8),
		fn2("_mm_avg_epu16", MmAvgEpu16),
		fn1("_mm_abs_epi8", MmAbsEpi8),
		fn1("_mm_abs_epi16", MmAbsEpi16),
		fn1("_mm_abs_epi32", MmAbsEpi32),
		fn2("_mm_mullo_epi16", MmMulloEpi16),
		fn2("_mm_mullo_epi32", MmMulloEpi32),
		fn2("_mm_mulhi_epi16", MmMulhiEpi16),
		fn2("_mm_mulhi_epu16", MmMulhiEpu16),
		fn2("_mm_mulhrs_epi16", MmMulhrsEpi16),
		fn2("_mm_madd_epi16", MmMaddEpi16),
		fn2("_mm_mul_epi32", MmMulEpi32),
		fn2("_mm_mul_epu32", MmMulEpu32),
		fn2("_mm_sad_epu8", MmSadEpu8),
		fn2("_mm_sign_epi8", MmSignEpi8),
		fn2("_mm_sign_epi16", MmSignEpi16),
		fn2("_mm_sign_epi32", MmSignEpi32),
		fn2("_mm_min_epi8", MmMinEpi8),
		fn2("_mm_min_epi16", MmMinEpi16),
		fn2("_mm_min_epi32", MmMinEpi32),
		fn2("_mm_min_epu8", MmMinEpu8),
		fn2("_mm_min_epu16", MmMinEpu16),
		fn2("_mm_min_epu32", MmMinEpu32),
		fn2("_mm_max_epi8", MmMaxEpi8),
		fn2("_mm_max_epi16", MmMaxEpi16),
		fn2("_mm_max_epi32", MmMaxEpi32),
		fn2("_mm_max_epu8", MmMaxEpu8),
		fn2("_mm_max_epu16", MmMaxEpu16),
		fn2("_mm_max_epu32", MmMaxEpu32),
		fn2("_mm_hadd_epi16", MmHaddEpi16),
		fn2("_mm_hadd_epi32", MmHaddEpi32),
		fn2("_mm_hadds_epi16", MmHaddsEpi16),
		fn2("_mm_hsub_epi16", MmHsubEpi16),
		fn2("_mm_hsub_epi32", MmHsubEpi32),
		fn2("_mm_hsubs_epi16", MmHsubsEpi16),
		fn2("_mm_cmpeq_epi8", MmCmpeqEpi8),
		fn2("_mm_cmpeq_epi16", MmCmpeqEpi16),
		fn2("_mm_cmpeq_epi32", MmCmpeqEpi32),
		fn2("_mm_cmpeq_epi64", MmCmpeqEpi64),
		fn2("_mm_cmpgt_epi8", MmCmpgtEpi8),
		fn2("_mm_cmpgt_epi16", MmCmpgtEpi16),
		fn2("_mm_cmpgt_epi32", MmCmpgtEpi32),
		fn2("_mm_cmpgt_epi64", MmCmpgtEpi64),
		fn2("_mm_cmplt_epi8", MmCmpltEpi8),
		fn2("_mm_cmplt_epi16", MmCmpltEpi16),
		fn2("_mm_cmplt_epi32", MmCmpltEpi32),
	)

	// 128-bit float arithmetic
	register(
		fn2("_mm_add_ps", MmAddPs),
		fn2("_mm_add_pd", MmAddPd),
		fn2("_mm_sub_ps", MmSubPs),
		fn2("_mm_sub_pd", MmSubPd),
		fn2("_mm_mul_ps", MmMulPs),
		fn2("_mm_mul_pd", MmMulPd),
		fn2("_mm_div_ps", MmDivPs),
		fn2("_mm_div_pd", MmDivPd),
		fn2("_mm_min_ps", MmMinPs),
		fn2("_mm_min_pd", MmMinPd),
		fn2("_mm_max_ps", MmMaxPs),
		fn2("_mm_max_pd", MmMaxPd),
		fn1("_mm_sqrt_ps", MmSqrtPs),
		fn1("_mm_sqrt_pd", MmSqrtPd),
		fn2("_mm_add_ss", MmAddSs),
		fn2("_mm_add_sd", MmAddSd),
		fn2("_mm_sub_ss", MmSubSs),
		fn2("_mm_sub_sd", MmSubSd),
		fn2("_mm_mul_ss", MmMulSs),
		fn2("_mm_mul_sd", MmMulSd),
		fn2("_mm_div_ss", MmDivSs),
		fn2("_mm_div_sd", MmDivSd),
		fn2("_mm_min_ss", MmMinSs),
		fn2("_mm_min_sd", MmMinSd),
		fn2("_mm_max_ss", MmMaxSs),
		fn2("_mm_max_sd", MmMaxSd),
		fn1("_mm_sqrt_ss", MmSqrtSs),
		fn2("_mm_sqrt_sd", MmSqrtSd),
		fn1("_mm_floor_ps", MmFloorPs),
		fn1("_mm_floor_pd", MmFloorPd),
		fn1("_mm_ceil_ps", MmCeilPs),
		fn1("_mm_ceil_pd", MmCeilPd),
		fn2("_mm_hadd_ps", MmHaddPs),
		fn2("_mm_hadd_pd", MmHaddPd),
		fn2("_mm_hsub_ps", MmHsubPs),
		fn2("_mm_hsub_pd", MmHsubPd),
		fn2("_mm_addsub_ps", MmAddsubPs),
		fn2("_mm_addsub_pd", MmAddsubPd),
	)
	registerAll(
		imm1("_mm_round_ps", MmRoundPs, 0x08, 0x09, 0x0A, 0x0B),
		imm1("_mm_round_pd", MmRoundPd, 0x08, 0x09, 0x0A, 0x0B),
		imm2("_mm_dp_ps", MmDpPs, 0x7F, 0xFF, 0xF1),
		imm2("_mm_dp_pd", MmDpPd, 0x7F, 0xFF, 0x31),
	)

	// 128-bit float compares
	register(
		fn2("_mm_cmpeq_ps", MmCmpeqPs),
		fn2("_mm_cmplt_ps", MmCmpltPs),
		fn2("_mm_cmple_ps", MmCmplePs),
		fn2("_mm_cmpgt_ps", MmCmpgtPs),
		fn2("_mm_cmpge_ps", MmCmpgePs),
		fn2("_mm_cmpneq_ps", MmCmpneqPs),
		fn2("_mm_cmpnlt_ps", MmCmpnltPs),
		fn2("_mm_cmpnle_ps", MmCmpnlePs),
		fn2("_mm_cmpngt_ps", MmCmpngtPs),
		fn2("_mm_cmpnge_ps", MmCmpngePs),
		fn2("_mm_cmpord_ps", MmCmpordPs),
		fn2("_mm_cmpunord_ps", MmCmpunordPs),
		fn2("_mm_cmpeq_pd", MmCmpeqPd),
		fn2("_mm_cmplt_pd", MmCmpltPd),
		fn2("_mm_cmple_pd", MmCmplePd),
		fn2("_mm_cmpgt_pd", MmCmpgtPd),
		fn2("_mm_cmpge_pd", MmCmpgePd),
		fn2("_mm_cmpneq_pd", MmCmpneqPd),
		fn2("_mm_cmpnlt_pd", MmCmpnltPd),
		fn2("_mm_cmpnle_pd", MmCmpnlePd),
		fn2("_mm_cmpngt_pd", MmCmpngtPd),
		fn2("_mm_cmpnge_pd", MmCmpngePd),
		fn2("_mm_cmpord_pd", MmCmpordPd),
		fn2("_mm_cmpunord_pd", MmCmpunordPd),
	)
	registerAll(
		imm2("_mm_cmp_ps", MmCmpPs, 0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F),
		imm2("_mm_cmp_pd", MmCmpPd, 0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F),
	)

	// Logical and test
	register(
		fn2("_mm_and_si128", MmAndSi128),
		fn2("_mm_andnot_si128", MmAndnotSi128),
		fn2("_mm_or_si128", MmOrSi128),
		fn2("_mm_xor_si128", MmXorSi128),
		fn2("_mm_and_ps", MmAndPs),
		fn2("_mm_andnot_ps", MmAndnotPs),
		fn2("_mm_or_ps", MmOrPs),
		fn2("_mm_xor_ps", MmXorPs),
		fn2("_mm_and_pd", MmAndPd),
		fn2("_mm_andnot_pd", MmAndnotPd),
		fn2("_mm_or_pd", MmOrPd),
		fn2("_mm_xor_pd", MmXorPd),
		toScalar2("_mm_testz_si128", MmTestzSi128),
		toScalar2("_mm_testc_si128", MmTestcSi128),
		toScalar2("_mm_testnzc_si128", MmTestnzcSi128),
	)

	// Shifts
	register(
		fn2("_mm_sll_epi16", MmSllEpi16),
		fn2("_mm_sll_epi32", MmSllEpi32),
		fn2("_mm_sll_epi64", MmSllEpi64),
		fn2("_mm_srl_epi16", MmSrlEpi16),
		fn2("_mm_srl_epi32", MmSrlEpi32),
		fn2("_mm_srl_epi64", MmSrlEpi64),
		fn2("_mm_sra_epi16", MmSraEpi16),
		fn2("_mm_sra_epi32", MmSraEpi32),
		fn2("_mm_sllv_epi32", MmSllvEpi32),
		fn2("_mm_srlv_epi32", MmSrlvEpi32),
		fn2("_mm_srav_epi32", MmSravEpi32),
		fn2("_mm_sllv_epi64", MmSllvEpi64),
		fn2("_mm_srlv_epi64", MmSrlvEpi64),
	)
	registerAll(
		imm1("_mm_slli_epi16", MmSlliEpi16, 0x07, 0x10),
		imm1("_mm_slli_epi32", MmSlliEpi32, 0x07),
		imm1("_mm_slli_epi64", MmSlliEpi64, 0x07),
		imm1("_mm_srli_epi16", MmSrliEpi16, 0x0B),
		imm1("_mm_srli_epi32", MmSrliEpi32, 0x0F),
		imm1("_mm_srli_epi64", MmSrliEpi64, 0x2F),
		imm1("_mm_srai_epi16", MmSraiEpi16, 0x0F, 0x28),
		imm1("_mm_srai_epi32", MmSraiEpi32, 0x1F),
		imm1("_mm_slli_si128", MmSlliSi128, 0x04, 0x0F),
		imm1("_mm_srli_si128", MmSrliSi128, 0x04, 0x0F),
		imm1("_mm_bslli_si128", MmBslliSi128, 0x04),
		imm1("_mm_bsrli_si128", MmBsrliSi128, 0x04),
		imm2("_mm_alignr_epi8", MmAlignrEpi8, 0x04, 0x14),
	)

	// Shuffles, blends, extract/insert and masks
	register(
		fn2("_mm_shuffle_epi8", MmShuffleEpi8),
		fn2x("_mm_permutevar_ps", MmPermutevarPs),
		fn2("_mm_unpacklo_epi8", MmUnpackloEpi8),
		fn2("_mm_unpackhi_epi8", MmUnpackhiEpi8),
		fn2("_mm_unpacklo_epi16", MmUnpackloEpi16),
		fn2("_mm_unpackhi_epi16", MmUnpackhiEpi16),
		fn2("_mm_unpacklo_epi32", MmUnpackloEpi32),
		fn2("_mm_unpackhi_epi32", MmUnpackhiEpi32),
		fn2("_mm_unpacklo_epi64", MmUnpackloEpi64),
		fn2("_mm_unpackhi_epi64", MmUnpackhiEpi64),
		fn2("_mm_unpacklo_ps", MmUnpackloPs),
		fn2("_mm_unpackhi_ps", MmUnpackhiPs),
		fn2("_mm_unpacklo_pd", MmUnpackloPd),
		fn2("_mm_unpackhi_pd", MmUnpackhiPd),
		fn2("_mm_movehl_ps", MmMovehlPs),
		fn2("_mm_movelh_ps", MmMovelhPs),
		fn1("_mm_moveldup_ps", MmMoveldupPs),
		fn1("_mm_movehdup_ps", MmMovehdupPs),
		fn1("_mm_movedup_pd", MmMovedupPd),
		fn3("_mm_blendv_epi8", MmBlendvEpi8),
		fn3("_mm_blendv_ps", MmBlendvPs),
		fn3("_mm_blendv_pd", MmBlendvPd),
		toScalar("_mm_movemask_epi8", MmMovemaskEpi8),
		toScalar("_mm_movemask_ps", MmMovemaskPs),
		toScalar("_mm_movemask_pd", MmMovemaskPd),
	)
	registerAll(
		imm1("_mm_shuffle_epi32", MmShuffleEpi32, 0x00, 0x36, 0x5A, 0x63, 0xA5, 0xFF),
		imm1("_mm_shufflelo_epi16", MmShuffleloEpi16, 0x1B),
		imm1("_mm_shufflehi_epi16", MmShufflehiEpi16, 0x1B),
		imm2("_mm_shuffle_ps", MmShufflePs, 0x00, 0x69, 0x96, 0xFF),
		imm2("_mm_shuffle_pd", MmShufflePd, 0x00, 0x01, 0x02, 0x03),
		imm1("_mm_permute_ps", MmPermutePs, 0x1B),
		imm1("_mm_permute_pd", MmPermutePd, 0x01, 0x05),
		imm2("_mm_blend_ps", MmBlendPs, 0x03, 0x0A),
		imm2("_mm_blend_pd", MmBlendPd, 0x00, 0x02),
		imm2("_mm_blend_epi16", MmBlendEpi16, 0x0C, 0xAA),
		imm2("_mm_blend_epi32", MmBlendEpi32, 0x05),
		immScalar("_mm_extract_epi8", MmExtractEpi8, 0x05),
		immScalar("_mm_extract_epi16", MmExtractEpi16, 0x03),
		immScalar("_mm_extract_epi32", MmExtractEpi32, 0x02),
		immScalar("_mm_extract_epi64", MmExtractEpi64, 0x01),
		immScalar("_mm_extract_ps", MmExtractPs, 0x03),
		immInsert("_mm_insert_epi8", MmInsertEpi8, 0x05),
		immInsert("_mm_insert_epi16", MmInsertEpi16, 0x03),
		immInsert("_mm_insert_epi32", MmInsertEpi32, 0x02),
		immInsert("_mm_insert_epi64", MmInsertEpi64, 0x01),
	)

	// Pack and conversions
	register(
		fn2("_mm_packs_epi16", MmPacksEpi16),
		fn2("_mm_packs_epi32", MmPacksEpi32),
		fn2("_mm_packus_epi16", MmPackusEpi16),
		fn2("_mm_packus_epi32", MmPackusEpi32),
		fn1("_mm_cvtepi8_epi16", MmCvtepi8Epi16),
		fn1("_mm_cvtepu8_epi16", MmCvtepu8Epi16),
		fn1("_mm_cvtepi16_epi32", MmCvtepi16Epi32),
		fn1("_mm_cvtepu16_epi32", MmCvtepu16Epi32),
		fn1("_mm_cvtepi32_epi64", MmCvtepi32Epi64),
		fn1("_mm_cvtepu32_epi64", MmCvtepu32Epi64),
		fn1("_mm_cvtepi32_ps", MmCvtepi32Ps),
		fn1("_mm_cvtepi32_pd", MmCvtepi32Pd),
		fn1("_mm_cvtps_epi32", MmCvtpsEpi32),
		fn1("_mm_cvttps_epi32", MmCvttpsEpi32),
		fn1("_mm_cvtpd_epi32", MmCvtpdEpi32),
		fn1("_mm_cvttpd_epi32", MmCvttpdEpi32),
		fn1("_mm_cvtps_pd", MmCvtpsPd),
		fn1("_mm_cvtpd_ps", MmCvtpdPs),
		fn2x("_mm_cvtss_sd", MmCvtssSd),
		fn2x("_mm_cvtsd_ss", MmCvtsdSs),
		withScalar("_mm_cvtsi32_ss", MmCvtsi32Ss),
		withScalar("_mm_cvtsi32_sd", MmCvtsi32Sd),
		withScalar("_mm_cvtsi64_sd", MmCvtsi64Sd),
		withScalar("_mm_cvtsi64_ss", MmCvtsi64Ss),
		toScalar("_mm_cvtss_si32", MmCvtssSi32),
		toScalar("_mm_cvttss_si32", MmCvttssSi32),
		toScalar("_mm_cvtss_si64", MmCvtssSi64),
		toScalar("_mm_cvttss_si64", MmCvttssSi64),
		toScalar("_mm_cvtsd_si32", MmCvtsdSi32),
		toScalar("_mm_cvttsd_si32", MmCvttsdSi32),
		toScalar("_mm_cvtss_f32", MmCvtssF32),
		toScalar("_mm_cvtsd_f64", MmCvtsdF64),
		toScalar("_mm_cvtsi128_si32", MmCvtsi128Si32),
		toScalar("_mm_cvtsi128_si64", MmCvtsi128Si64),
		fromScalar("_mm_cvtsi32_si128", MmCvtsi32Si128),
		fromScalar("_mm_cvtsi64_si128", MmCvtsi64Si128),
	)

	// Casts
	register(
		fn1("_mm_castps_si128", MmCastpsSi128),
		fn1("_mm_castsi128_ps", MmCastsi128Ps),
		fn1("_mm_castpd_ps", MmCastpdPs),
		fn1("_mm_castps_pd", MmCastpsPd),
		fn1("_mm_castpd_si128", MmCastpdSi128),
		fn1("_mm_castsi128_pd", MmCastsi128Pd),
		fn1("_mm256_castps_si256", Mm256CastpsSi256),
		fn1("_mm256_castsi256_ps", Mm256Castsi256Ps),
		fn1("_mm256_castpd_si256", Mm256CastpdSi256),
		fn1("_mm256_castsi256_pd", Mm256Castsi256Pd),
		fn1("_mm256_castps_pd", Mm256CastpsPd),
		fn1("_mm256_castpd_ps", Mm256CastpdPs),
		fn1("_mm256_castps256_ps128", Mm256Castps256Ps128),
		fn1("_mm256_castpd256_pd128", Mm256Castpd256Pd128),
		fn1("_mm256_castsi256_si128", Mm256Castsi256Si128),
		fn1("_mm256_castps128_ps256", Mm256Castps128Ps256),
		fn1("_mm256_castpd128_pd256", Mm256Castpd128Pd256),
		fn1("_mm256_castsi128_si256", Mm256Castsi128Si256),
		fn1("_mm256_zextps128_ps256", Mm256Zextps128Ps256),
		fn1("_mm256_zextpd128_pd256", Mm256Zextpd128Pd256),
		fn1("_mm256_zextsi128_si256", Mm256Zextsi128Si256),
	)

	// Construction, loads and stores
	register(
		fn0("_mm_setzero_ps", MmSetzeroPs),
		fn0("_mm_undefined_ps", MmUndefinedPs),
		fn0("_mm_setzero_pd", MmSetzeroPd),
		fn0("_mm_undefined_pd", MmUndefinedPd),
		fn0("_mm_setzero_si128", MmSetzeroSi128),
		fn0("_mm_undefined_si128", MmUndefinedSi128),
		fromScalar("_mm_set1_ps", MmSet1Ps),
		fromScalar("_mm_set1_pd", MmSet1Pd),
		fromScalar("_mm_set1_epi32", MmSet1Epi32),
		fromScalar("_mm_set1_epi64x", MmSet1Epi64x),
		fromScalar("_mm256_set1_ps", Mm256Set1Ps),
		fromScalar("_mm256_set1_pd", Mm256Set1Pd),
		fromScalar("_mm256_set1_epi32", Mm256Set1Epi32),
		fromScalar("_mm256_set1_epi64x", Mm256Set1Epi64x),
		fn2("_mm256_set_m128", Mm256SetM128),
		fn2("_mm256_set_m128d", Mm256SetM128d),
		fn2("_mm256_set_m128i", Mm256SetM128i),
		fn2("_mm256_setr_m128", Mm256SetrM128),
		fn2("_mm256_setr_m128d", Mm256SetrM128d),
		fn2("_mm256_setr_m128i", Mm256SetrM128i),
		load("_mm_load_ps", MmLoadPs),
		load("_mm_loadu_ps", MmLoaduPs),
		load("_mm_load_ss", MmLoadSs),
		load("_mm_load1_ps", MmLoad1Ps),
		load("_mm_load_pd", MmLoadPd),
		load("_mm_loadu_pd", MmLoaduPd),
		load("_mm_load_sd", MmLoadSd),
		load("_mm_load1_pd", MmLoad1Pd),
		load("_mm_loaddup_pd", MmLoaddupPd),
		load("_mm_load_si128", MmLoadSi128[int32]),
		load("_mm_loadu_si128", MmLoaduSi128[int32]),
		load("_mm_loadl_epi64", MmLoadlEpi64[int32]),
		fn0("_mm256_setzero_ps", Mm256SetzeroPs),
		fn0("_mm256_setzero_pd", Mm256SetzeroPd),
		fn0("_mm256_setzero_si256", Mm256SetzeroSi256),
		load("_mm256_load_ps", Mm256LoadPs),
		load("_mm256_loadu_ps", Mm256LoaduPs),
		load("_mm256_load_pd", Mm256LoadPd),
		load("_mm256_loadu_pd", Mm256LoaduPd),
		load("_mm256_load_si256", Mm256LoadSi256[int32]),
		load("_mm256_loadu_si256", Mm256LoaduSi256[int32]),
		load("_mm256_broadcast_ss", Mm256BroadcastSs),
		load("_mm256_broadcast_sd", Mm256BroadcastSd),
		load("_mm256_broadcast_ps", Mm256BroadcastPs),
		load("_mm256_broadcast_pd", Mm256BroadcastPd),
		store("_mm_store_ps", MmStorePs),
		store("_mm_storeu_ps", MmStoreuPs),
		store("_mm_store_ss", MmStoreSs),
		store("_mm_store1_ps", MmStore1Ps),
		store("_mm_store_pd", MmStorePd),
		store("_mm_storeu_pd", MmStoreuPd),
		store("_mm_store_sd", MmStoreSd),
		store("_mm_store_si128", MmStoreSi128[int32]),
		store("_mm_storeu_si128", MmStoreuSi128[int32]),
		store("_mm_storel_epi64", MmStorelEpi64[int32]),
		store("_mm256_store_ps", Mm256StorePs),
		store("_mm256_storeu_ps", Mm256StoreuPs),
		store("_mm256_store_pd", Mm256StorePd),
		store("_mm256_storeu_pd", Mm256StoreuPd),
		store("_mm256_store_si256", Mm256StoreSi256[int32]),
		store("_mm256_storeu_si256", Mm256StoreuSi256[int32]),
	)

	// 256-bit lanewise
	register(
		fn2("_mm256_add_ps", Mm256AddPs),
		fn2("_mm256_add_pd", Mm256AddPd),
		fn2("_mm256_sub_ps", Mm256SubPs),
		fn2("_mm256_sub_pd", Mm256SubPd),
		fn2("_mm256_mul_ps", Mm256MulPs),
		fn2("_mm256_mul_pd", Mm256MulPd),
		fn2("_mm256_div_ps", Mm256DivPs),
		fn2("_mm256_div_pd", Mm256DivPd),
		fn2("_mm256_min_ps", Mm256MinPs),
		fn2("_mm256_min_pd", Mm256MinPd),
		fn2("_mm256_max_ps", Mm256MaxPs),
		fn2("_mm256_max_pd", Mm256MaxPd),
		fn2("_mm256_hadd_ps", Mm256HaddPs),
		fn2("_mm256_hadd_pd", Mm256HaddPd),
		fn2("_mm256_hsub_ps", Mm256HsubPs),
		fn2("_mm256_hsub_pd", Mm256HsubPd),
		fn2("_mm256_addsub_ps", Mm256AddsubPs),
		fn2("_mm256_addsub_pd", Mm256AddsubPd),
		fn1("_mm256_sqrt_ps", Mm256SqrtPs),
		fn1("_mm256_sqrt_pd", Mm256SqrtPd),
		fn2("_mm256_and_ps", Mm256AndPs),
		fn2("_mm256_and_pd", Mm256AndPd),
		fn2("_mm256_andnot_ps", Mm256AndnotPs),
		fn2("_mm256_andnot_pd", Mm256AndnotPd),
		fn2("_mm256_or_ps", Mm256OrPs),
		fn2("_mm256_or_pd", Mm256OrPd),
		fn2("_mm256_xor_ps", Mm256XorPs),
		fn2("_mm256_xor_pd", Mm256XorPd),
		fn2("_mm256_and_si256", Mm256AndSi256),
		fn2("_mm256_andnot_si256", Mm256AndnotSi256),
		fn2("_mm256_or_si256", Mm256OrSi256),
		fn2("_mm256_xor_si256", Mm256XorSi256),
		fn2("_mm256_add_epi8", Mm256AddEpi8),
		fn2("_mm256_add_epi16", Mm256AddEpi16),
		fn2("_mm256_add_epi32", Mm256AddEpi32),
		fn2("_mm256_add_epi64", Mm256AddEpi64),
		fn2("_mm256_sub_epi8", Mm256SubEpi8),
		fn2("_mm256_sub_epi16", Mm256SubEpi16),
		fn2("_mm256_sub_epi32", Mm256SubEpi32),
		fn2("_mm256_sub_epi64", Mm256SubEpi64),
		fn2("_mm256_adds_epi8", Mm256AddsEpi8),
		fn2("_mm256_adds_epi16", Mm256AddsEpi16),
		fn2("_mm256_adds_epu8", Mm256AddsEpu8),
		fn2("_mm256_adds_epu16", Mm256AddsEpu16),
		fn2("_mm256_subs_epi8", Mm256SubsEpi8),
		fn2("_mm256_subs_epi16", Mm256SubsEpi16),
		fn2("_mm256_subs_epu8", Mm256SubsEpu8),
		fn2("_mm256_subs_epu16", Mm256SubsEpu16),
		fn2("_mm256_avg_epu8", Mm256AvgEpu8),
		fn2("_mm256_avg_epu16", Mm256AvgEpu16),
		fn2("_mm256_mullo_epi16", Mm256MulloEpi16),
		fn2("_mm256_mullo_epi32", Mm256MulloEpi32),
		fn2("_mm256_mulhi_epi16", Mm256MulhiEpi16),
		fn2("_mm256_mulhi_epu16", Mm256MulhiEpu16),
		fn2("_mm256_mulhrs_epi16", Mm256MulhrsEpi16),
		fn2("_mm256_madd_epi16", Mm256MaddEpi16),
		fn2("_mm256_mul_epi32", Mm256MulEpi32),
		fn2("_mm256_mul_epu32", Mm256MulEpu32),
		fn2("_mm256_sad_epu8", Mm256SadEpu8),
		fn2("_mm256_sign_epi8", Mm256SignEpi8),
		fn2("_mm256_sign_epi16", Mm256SignEpi16),
		fn2("_mm256_sign_epi32", Mm256SignEpi32),
		fn2("_mm256_min_epi8", Mm256MinEpi8),
		fn2("_mm256_min_epi16", Mm256MinEpi16),
		fn2("_mm256_min_epi32", Mm256MinEpi32),
		fn2("_mm256_min_epu8", Mm256MinEpu8),
		fn2("_mm256_min_epu16", Mm256MinEpu16),
		fn2("_mm256_min_epu32", Mm256MinEpu32),
		fn2("_mm256_max_epi8", Mm256MaxEpi8),
		fn2("_mm256_max_epi16", Mm256MaxEpi16),
		fn2("_mm256_max_epi32", Mm256MaxEpi32),
		fn2("_mm256_max_epu8", Mm256MaxEpu8),
		fn2("_mm256_max_epu16", Mm256MaxEpu16),
		fn2("_mm256_max_epu32", Mm256MaxEpu32),
		fn2("_mm256_hadd_epi16", Mm256HaddEpi16),
		fn2("_mm256_hadd_epi32", Mm256HaddEpi32),
		fn2("_mm256_hadds_epi16", Mm256HaddsEpi16),
		fn2("_mm256_hsub_epi16", Mm256HsubEpi16),
		fn2("_mm256_hsub_epi32", Mm256HsubEpi32),
		fn2("_mm256_hsubs_epi16", Mm256HsubsEpi16),
		fn1("_mm256_abs_epi8", Mm256AbsEpi8),
		fn1("_mm256_abs_epi16", Mm256AbsEpi16),
		fn1("_mm256_abs_epi32", Mm256AbsEpi32),
		fn2("_mm256_cmpeq_epi8", Mm256CmpeqEpi8),
		fn2("_mm256_cmpeq_epi16", Mm256CmpeqEpi16),
		fn2("_mm256_cmpeq_epi32", Mm256CmpeqEpi32),
		fn2("_mm256_cmpeq_epi64", Mm256CmpeqEpi64),
		fn2("_mm256_cmpgt_epi8", Mm256CmpgtEpi8),
		fn2("_mm256_cmpgt_epi16", Mm256CmpgtEpi16),
		fn2("_mm256_cmpgt_epi32", Mm256CmpgtEpi32),
		fn2("_mm256_cmpgt_epi64", Mm256CmpgtEpi64),
		fn2("_mm256_sllv_epi32", Mm256SllvEpi32),
		fn2("_mm256_srlv_epi32", Mm256SrlvEpi32),
		fn2("_mm256_srav_epi32", Mm256SravEpi32),
		fn2("_mm256_sllv_epi64", Mm256SllvEpi64),
		fn2("_mm256_srlv_epi64", Mm256SrlvEpi64),
		fn2("_mm256_unpacklo_epi8", Mm256UnpackloEpi8),
		fn2("_mm256_unpacklo_epi16", Mm256UnpackloEpi16),
		fn2("_mm256_unpacklo_epi32", Mm256UnpackloEpi32),
		fn2("_mm256_unpacklo_epi64", Mm256UnpackloEpi64),
		fn2("_mm256_unpacklo_ps", Mm256UnpackloPs),
		fn2("_mm256_unpacklo_pd", Mm256UnpackloPd),
		fn2("_mm256_unpackhi_epi8", Mm256UnpackhiEpi8),
		fn2("_mm256_unpackhi_epi16", Mm256UnpackhiEpi16),
		fn2("_mm256_unpackhi_epi32", Mm256UnpackhiEpi32),
		fn2("_mm256_unpackhi_epi64", Mm256UnpackhiEpi64),
		fn2("_mm256_unpackhi_ps", Mm256UnpackhiPs),
		fn2("_mm256_unpackhi_pd", Mm256UnpackhiPd),
		fn2("_mm256_packs_epi16", Mm256PacksEpi16),
		fn2("_mm256_packs_epi32", Mm256PacksEpi32),
		fn2("_mm256_packus_epi16", Mm256PackusEpi16),
		fn2("_mm256_packus_epi32", Mm256PackusEpi32),
		fn2("_mm256_shuffle_epi8", Mm256ShuffleEpi8),
		fn1("_mm256_moveldup_ps", Mm256MoveldupPs),
		fn1("_mm256_movehdup_ps", Mm256MovehdupPs),
		fn1("_mm256_movedup_pd", Mm256MovedupPd),
		fn1("_mm256_cvtepi32_ps", Mm256Cvtepi32Ps),
		fn1("_mm256_cvtps_epi32", Mm256CvtpsEpi32),
		fn1("_mm256_cvttps_epi32", Mm256CvttpsEpi32),
		fn1("_mm256_floor_ps", Mm256FloorPs),
		fn1("_mm256_ceil_ps", Mm256CeilPs),
		fn1("_mm256_floor_pd", Mm256FloorPd),
		fn1("_mm256_ceil_pd", Mm256CeilPd),
	)

	// 256-bit immediates, cross-half and width-changing
	register(
		fn2x("_mm256_sll_epi16", Mm256SllEpi16),
		fn2x("_mm256_sll_epi32", Mm256SllEpi32),
		fn2x("_mm256_sll_epi64", Mm256SllEpi64),
		fn2x("_mm256_srl_epi16", Mm256SrlEpi16),
		fn2x("_mm256_srl_epi32", Mm256SrlEpi32),
		fn2x("_mm256_srl_epi64", Mm256SrlEpi64),
		fn2x("_mm256_sra_epi16", Mm256SraEpi16),
		fn2x("_mm256_sra_epi32", Mm256SraEpi32),
		fn3("_mm256_blendv_epi8", Mm256BlendvEpi8),
		fn3("_mm256_blendv_ps", Mm256BlendvPs),
		fn3("_mm256_blendv_pd", Mm256BlendvPd),
		fn2x("_mm256_permutevar_ps", Mm256PermutevarPs),
		fn2("_mm256_permutevar8x32_epi32", Mm256Permutevar8x32Epi32),
		fn2x("_mm256_permutevar8x32_ps", Mm256Permutevar8x32Ps),
		fn1("_mm256_broadcastb_epi8", Mm256BroadcastbEpi8),
		fn1("_mm256_broadcastw_epi16", Mm256BroadcastwEpi16),
		fn1("_mm256_broadcastd_epi32", Mm256BroadcastdEpi32),
		fn1("_mm256_broadcastq_epi64", Mm256BroadcastqEpi64),
		fn1("_mm256_broadcastss_ps", Mm256BroadcastssPs),
		fn1("_mm256_broadcastsd_pd", Mm256BroadcastsdPd),
		fn1("_mm256_broadcastsi128_si256", Mm256Broadcastsi128Si256),
		fn1("_mm256_cvtepi32_pd", Mm256Cvtepi32Pd),
		fn1("_mm256_cvtps_pd", Mm256CvtpsPd),
		fn1("_mm256_cvtpd_ps", Mm256CvtpdPs),
		fn1("_mm256_cvtpd_epi32", Mm256CvtpdEpi32),
		fn1("_mm256_cvttpd_epi32", Mm256CvttpdEpi32),
		fn1("_mm256_cvtepi8_epi16", Mm256Cvtepi8Epi16),
		fn1("_mm256_cvtepu8_epi16", Mm256Cvtepu8Epi16),
		fn1("_mm256_cvtepi16_epi32", Mm256Cvtepi16Epi32),
		fn1("_mm256_cvtepu16_epi32", Mm256Cvtepu16Epi32),
		fn1("_mm256_cvtepi32_epi64", Mm256Cvtepi32Epi64),
		fn1("_mm256_cvtepu32_epi64", Mm256Cvtepu32Epi64),
		toScalar("_mm256_cvtss_f32", Mm256CvtssF32),
		toScalar("_mm256_cvtsd_f64", Mm256CvtsdF64),
		toScalar("_mm256_cvtsi256_si32", Mm256Cvtsi256Si32),
		toScalar("_mm256_movemask_epi8", Mm256MovemaskEpi8),
		toScalar("_mm256_movemask_ps", Mm256MovemaskPs),
		toScalar("_mm256_movemask_pd", Mm256MovemaskPd),
		toScalar2("_mm256_testz_si256", Mm256TestzSi256),
		toScalar2("_mm256_testc_si256", Mm256TestcSi256),
		toScalar2("_mm256_testnzc_si256", Mm256TestnzcSi256),
	)
	registerAll(
		imm1("_mm256_round_ps", Mm256RoundPs, 0x08, 0x09, 0x0A, 0x0B),
		imm1("_mm256_round_pd", Mm256RoundPd, 0x08, 0x09, 0x0A, 0x0B),
		imm2("_mm256_cmp_ps", Mm256CmpPs, 0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F),
		imm2("_mm256_cmp_pd", Mm256CmpPd, 0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F),
		imm2("_mm256_dp_ps", Mm256DpPs, 0x7F, 0xFF, 0xF1),
		imm1("_mm256_slli_epi16", Mm256SlliEpi16, 0x07, 0x10),
		imm1("_mm256_slli_epi32", Mm256SlliEpi32, 0x07),
		imm1("_mm256_slli_epi64", Mm256SlliEpi64, 0x07),
		imm1("_mm256_srli_epi16", Mm256SrliEpi16, 0x0B),
		imm1("_mm256_srli_epi32", Mm256SrliEpi32, 0x0F),
		imm1("_mm256_srli_epi64", Mm256SrliEpi64, 0x2F),
		imm1("_mm256_srai_epi16", Mm256SraiEpi16, 0x0F, 0x28),
		imm1("_mm256_srai_epi32", Mm256SraiEpi32, 0x1F),
		imm1("_mm256_bslli_epi128", Mm256BslliEpi128, 0x04),
		imm1("_mm256_bsrli_epi128", Mm256BsrliEpi128, 0x04),
		imm1("_mm256_shuffle_epi32", Mm256ShuffleEpi32, 0x00, 0x36, 0x5A, 0x63, 0xA5, 0xFF),
		imm1("_mm256_shufflelo_epi16", Mm256ShuffleloEpi16, 0x1B),
		imm1("_mm256_shufflehi_epi16", Mm256ShufflehiEpi16, 0x1B),
		imm2("_mm256_alignr_epi8", Mm256AlignrEpi8, 0x04, 0x14),
		imm2("_mm256_blend_epi16", Mm256BlendEpi16, 0x0C, 0xAA),
		imm2("_mm256_shuffle_ps", Mm256ShufflePs, 0x00, 0x69, 0x96, 0xFF),
		imm2("_mm256_shuffle_pd", Mm256ShufflePd, 0x00, 0x01, 0x02, 0x03),
		imm2("_mm256_blend_ps", Mm256BlendPs, 0x03, 0x0A),
		imm2("_mm256_blend_pd", Mm256BlendPd, 0x00, 0x02),
		imm2("_mm256_blend_epi32", Mm256BlendEpi32, 0x05),
		imm1("_mm256_permute_ps", Mm256PermutePs, 0x1B),
		imm1("_mm256_permute_pd", Mm256PermutePd, 0x01, 0x05),
		imm2("_mm256_permute2f128_ps", Mm256Permute2f128Ps, 0x20, 0x31),
		imm2("_mm256_permute2f128_pd", Mm256Permute2f128Pd, 0x00, 0x01, 0x21, 0x28),
		imm2("_mm256_permute2f128_si256", Mm256Permute2f128Si256, 0x03),
		imm2("_mm256_permute2x128_si256", Mm256Permute2x128Si256, 0x12, 0x80),
		imm1("_mm256_permute4x64_epi64", Mm256Permute4x64Epi64, 0x1B, 0x4E),
		imm1("_mm256_permute4x64_pd", Mm256Permute4x64Pd, 0x1B),
		imm1("_mm256_extractf128_ps", Mm256Extractf128Ps, 0x01),
		imm1("_mm256_extractf128_pd", Mm256Extractf128Pd, 0x01),
		imm1("_mm256_extractf128_si256", Mm256Extractf128Si256, 0x01),
		imm1("_mm256_extracti128_si256", Mm256Extracti128Si256, 0x01),
		imm2x("_mm256_insertf128_ps", Mm256Insertf128Ps, 0x01),
		imm2x("_mm256_insertf128_pd", Mm256Insertf128Pd, 0x01),
		imm2x("_mm256_insertf128_si256", Mm256Insertf128Si256, 0x00),
		imm2x("_mm256_inserti128_si256", Mm256Inserti128Si256, 0x01),
	)
}
