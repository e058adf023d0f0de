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

// Lanewise 256-bit operations: each is the 128-bit operation applied to
// both halves.

// ===== Float arithmetic =====

// Mm256AddPs is _mm256_add_ps.
func Mm256AddPs(a, b M256) M256 { return split2[M256](a, b, MmAddPs) }

// Mm256AddPd is _mm256_add_pd.
func Mm256AddPd(a, b M256d) M256d { return split2[M256d](a, b, MmAddPd) }

// Mm256SubPs is _mm256_sub_ps.
func Mm256SubPs(a, b M256) M256 { return split2[M256](a, b, MmSubPs) }

// Mm256SubPd is _mm256_sub_pd.
func Mm256SubPd(a, b M256d) M256d { return split2[M256d](a, b, MmSubPd) }

// Mm256MulPs is _mm256_mul_ps.
func Mm256MulPs(a, b M256) M256 { return split2[M256](a, b, MmMulPs) }

// Mm256MulPd is _mm256_mul_pd.
func Mm256MulPd(a, b M256d) M256d { return split2[M256d](a, b, MmMulPd) }

// Mm256DivPs is _mm256_div_ps.
func Mm256DivPs(a, b M256) M256 { return split2[M256](a, b, MmDivPs) }

// Mm256DivPd is _mm256_div_pd.
func Mm256DivPd(a, b M256d) M256d { return split2[M256d](a, b, MmDivPd) }

// Mm256MinPs is _mm256_min_ps.
func Mm256MinPs(a, b M256) M256 { return split2[M256](a, b, MmMinPs) }

// Mm256MinPd is _mm256_min_pd.
func Mm256MinPd(a, b M256d) M256d { return split2[M256d](a, b, MmMinPd) }

// Mm256MaxPs is _mm256_max_ps.
func Mm256MaxPs(a, b M256) M256 { return split2[M256](a, b, MmMaxPs) }

// Mm256MaxPd is _mm256_max_pd.
func Mm256MaxPd(a, b M256d) M256d { return split2[M256d](a, b, MmMaxPd) }

// Mm256HaddPs is _mm256_hadd_ps.
func Mm256HaddPs(a, b M256) M256 { return split2[M256](a, b, MmHaddPs) }

// Mm256HaddPd is _mm256_hadd_pd.
func Mm256HaddPd(a, b M256d) M256d { return split2[M256d](a, b, MmHaddPd) }

// Mm256HsubPs is _mm256_hsub_ps.
func Mm256HsubPs(a, b M256) M256 { return split2[M256](a, b, MmHsubPs) }

// Mm256HsubPd is _mm256_hsub_pd.
func Mm256HsubPd(a, b M256d) M256d { return split2[M256d](a, b, MmHsubPd) }

// Mm256AddsubPs is _mm256_addsub_ps.
func Mm256AddsubPs(a, b M256) M256 { return split2[M256](a, b, MmAddsubPs) }

// Mm256AddsubPd is _mm256_addsub_pd.
func Mm256AddsubPd(a, b M256d) M256d { return split2[M256d](a, b, MmAddsubPd) }

// Mm256SqrtPs is _mm256_sqrt_ps.
func Mm256SqrtPs(a M256) M256 { return split1[M256](a, MmSqrtPs) }

// Mm256SqrtPd is _mm256_sqrt_pd.
func Mm256SqrtPd(a M256d) M256d { return split1[M256d](a, MmSqrtPd) }

// ===== Logical =====

// Mm256AndPs is _mm256_and_ps.
func Mm256AndPs(a, b M256) M256 { return split2[M256](a, b, MmAndPs) }

// Mm256AndPd is _mm256_and_pd.
func Mm256AndPd(a, b M256d) M256d { return split2[M256d](a, b, MmAndPd) }

// Mm256AndnotPs is _mm256_andnot_ps.
func Mm256AndnotPs(a, b M256) M256 { return split2[M256](a, b, MmAndnotPs) }

// Mm256AndnotPd is _mm256_andnot_pd.
func Mm256AndnotPd(a, b M256d) M256d { return split2[M256d](a, b, MmAndnotPd) }

// Mm256OrPs is _mm256_or_ps.
func Mm256OrPs(a, b M256) M256 { return split2[M256](a, b, MmOrPs) }

// Mm256OrPd is _mm256_or_pd.
func Mm256OrPd(a, b M256d) M256d { return split2[M256d](a, b, MmOrPd) }

// Mm256XorPs is _mm256_xor_ps.
func Mm256XorPs(a, b M256) M256 { return split2[M256](a, b, MmXorPs) }

// Mm256XorPd is _mm256_xor_pd.
func Mm256XorPd(a, b M256d) M256d { return split2[M256d](a, b, MmXorPd) }

// Mm256AndSi256 is _mm256_and_si256.
func Mm256AndSi256(a, b M256i) M256i { return split2[M256i](a, b, MmAndSi128) }

// Mm256AndnotSi256 is _mm256_andnot_si256.
func Mm256AndnotSi256(a, b M256i) M256i { return split2[M256i](a, b, MmAndnotSi128) }

// Mm256OrSi256 is _mm256_or_si256.
func Mm256OrSi256(a, b M256i) M256i { return split2[M256i](a, b, MmOrSi128) }

// Mm256XorSi256 is _mm256_xor_si256.
func Mm256XorSi256(a, b M256i) M256i { return split2[M256i](a, b, MmXorSi128) }

// ===== Integer arithmetic =====

// Mm256AddEpi8 is _mm256_add_epi8.
func Mm256AddEpi8(a, b M256i) M256i { return split2[M256i](a, b, MmAddEpi8) }

// Mm256AddEpi16 is _mm256_add_epi16.
func Mm256AddEpi16(a, b M256i) M256i { return split2[M256i](a, b, MmAddEpi16) }

// Mm256AddEpi32 is _mm256_add_epi32.
func Mm256AddEpi32(a, b M256i) M256i { return split2[M256i](a, b, MmAddEpi32) }

// Mm256AddEpi64 is _mm256_add_epi64.
func Mm256AddEpi64(a, b M256i) M256i { return split2[M256i](a, b, MmAddEpi64) }

// Mm256SubEpi8 is _mm256_sub_epi8.
func Mm256SubEpi8(a, b M256i) M256i { return split2[M256i](a, b, MmSubEpi8) }

// Mm256SubEpi16 is _mm256_sub_epi16.
func Mm256SubEpi16(a, b M256i) M256i { return split2[M256i](a, b, MmSubEpi16) }

// Mm256SubEpi32 is _mm256_sub_epi32.
func Mm256SubEpi32(a, b M256i) M256i { return split2[M256i](a, b, MmSubEpi32) }

// Mm256SubEpi64 is _mm256_sub_epi64.
func Mm256SubEpi64(a, b M256i) M256i { return split2[M256i](a, b, MmSubEpi64) }

// Mm256AddsEpi8 is _mm256_adds_epi8.
func Mm256AddsEpi8(a, b M256i) M256i { return split2[M256i](a, b, MmAddsEpi8) }

// Mm256AddsEpi16 is _mm256_adds_epi16.
func Mm256AddsEpi16(a, b M256i) M256i { return split2[M256i](a, b, MmAddsEpi16) }

// Mm256AddsEpu8 is _mm256_adds_epu8.
func Mm256AddsEpu8(a, b M256i) M256i { return split2[M256i](a, b, MmAddsEpu8) }

// Mm256AddsEpu16 is _mm256_adds_epu16.
func Mm256AddsEpu16(a, b M256i) M256i { return split2[M256i](a, b, MmAddsEpu16) }

// Mm256SubsEpi8 is _mm256_subs_epi8.
func Mm256SubsEpi8(a, b M256i) M256i { return split2[M256i](a, b, MmSubsEpi8) }

// Mm256SubsEpi16 is _mm256_subs_epi16.
func Mm256SubsEpi16(a, b M256i) M256i { return split2[M256i](a, b, MmSubsEpi16) }

// Mm256SubsEpu8 is _mm256_subs_epu8.
func Mm256SubsEpu8(a, b M256i) M256i { return split2[M256i](a, b, MmSubsEpu8) }

// Mm256SubsEpu16 is _mm256_subs_epu16.
func Mm256SubsEpu16(a, b M256i) M256i { return split2[M256i](a, b, MmSubsEpu16) }

// Mm256AvgEpu8 is _mm256_avg_epu8.
func Mm256AvgEpu8(a, b M256i) M256i { return split2[M256i](a, b, MmAvgEpu8) }

// Mm256AvgEpu16 is _mm256_avg_epu16.
func Mm256AvgEpu16(a, b M256i) M256i { return split2[M256i](a, b, MmAvgEpu16) }

// Mm256MulloEpi16 is _mm256_mullo_epi16.
func Mm256MulloEpi16(a, b M256i) M256i { return split2[M256i](a, b, MmMulloEpi16) }

// Mm256MulloEpi32 is _mm256_mullo_epi32.
func Mm256MulloEpi32(a, b M256i) M256i { return split2[M256i](a, b, MmMulloEpi32) }

// Mm256MulhiEpi16 is _mm256_mulhi_epi16.
func Mm256MulhiEpi16(a, b M256i) M256i { return split2[M256i](a, b, MmMulhiEpi16) }

// Mm256MulhiEpu16 is _mm256_mulhi_epu16.
func Mm256MulhiEpu16(a, b M256i) M256i { return split2[M256i](a, b, MmMulhiEpu16) }

// Mm256MulhrsEpi16 is _mm256_mulhrs_epi16.
func Mm256MulhrsEpi16(a, b M256i) M256i { return split2[M256i](a, b, MmMulhrsEpi16) }

// Mm256MaddEpi16 is _mm256_madd_epi16.
func Mm256MaddEpi16(a, b M256i) M256i { return split2[M256i](a, b, MmMaddEpi16) }

// Mm256MulEpi32 is _mm256_mul_epi32.
func Mm256MulEpi32(a, b M256i) M256i { return split2[M256i](a, b, MmMulEpi32) }

// Mm256MulEpu32 is _mm256_mul_epu32.
func Mm256MulEpu32(a, b M256i) M256i { return split2[M256i](a, b, MmMulEpu32) }

// Mm256SadEpu8 is _mm256_sad_epu8.
func Mm256SadEpu8(a, b M256i) M256i { return split2[M256i](a, b, MmSadEpu8) }

// Mm256SignEpi8 is _mm256_sign_epi8.
func Mm256SignEpi8(a, b M256i) M256i { return split2[M256i](a, b, MmSignEpi8) }

// Mm256SignEpi16 is _mm256_sign_epi16.
func Mm256SignEpi16(a, b M256i) M256i { return split2[M256i](a, b, MmSignEpi16) }

// Mm256SignEpi32 is _mm256_sign_epi32.
func Mm256SignEpi32(a, b M256i) M256i { return split2[M256i](a, b, MmSignEpi32) }

// Mm256MinEpi8 is _mm256_min_epi8.
func Mm256MinEpi8(a, b M256i) M256i { return split2[M256i](a, b, MmMinEpi8) }

// Mm256MinEpi16 is _mm256_min_epi16.
func Mm256MinEpi16(a, b M256i) M256i { return split2[M256i](a, b, MmMinEpi16) }

// Mm256MinEpi32 is _mm256_min_epi32.
func Mm256MinEpi32(a, b M256i) M256i { return split2[M256i](a, b, MmMinEpi32) }

// Mm256MinEpu8 is _mm256_min_epu8.
func Mm256MinEpu8(a, b M256i) M256i { return split2[M256i](a, b, MmMinEpu8) }

// Mm256MinEpu16 is _mm256_min_epu16.
func Mm256MinEpu16(a, b M256i) M256i { return split2[M256i](a, b, MmMinEpu16) }

// Mm256MinEpu32 is _mm256_min_epu32.
func Mm256MinEpu32(a, b M256i) M256i { return split2[M256i](a, b, MmMinEpu32) }

// Mm256MaxEpi8 is _mm256_max_epi8.
func Mm256MaxEpi8(a, b M256i) M256i { return split2[M256i](a, b, MmMaxEpi8) }

// Mm256MaxEpi16 is _mm256_max_epi16.
func Mm256MaxEpi16(a, b M256i) M256i { return split2[M256i](a, b, MmMaxEpi16) }

// Mm256MaxEpi32 is _mm256_max_epi32.
func Mm256MaxEpi32(a, b M256i) M256i { return split2[M256i](a, b, MmMaxEpi32) }

// Mm256MaxEpu8 is _mm256_max_epu8.
func Mm256MaxEpu8(a, b M256i) M256i { return split2[M256i](a, b, MmMaxEpu8) }

// Mm256MaxEpu16 is _mm256_max_epu16.
func Mm256MaxEpu16(a, b M256i) M256i { return split2[M256i](a, b, MmMaxEpu16) }

// Mm256MaxEpu32 is _mm256_max_epu32.
func Mm256MaxEpu32(a, b M256i) M256i { return split2[M256i](a, b, MmMaxEpu32) }

// Mm256HaddEpi16 is _mm256_hadd_epi16.
func Mm256HaddEpi16(a, b M256i) M256i { return split2[M256i](a, b, MmHaddEpi16) }

// Mm256HaddEpi32 is _mm256_hadd_epi32.
func Mm256HaddEpi32(a, b M256i) M256i { return split2[M256i](a, b, MmHaddEpi32) }

// Mm256HaddsEpi16 is _mm256_hadds_epi16.
func Mm256HaddsEpi16(a, b M256i) M256i { return split2[M256i](a, b, MmHaddsEpi16) }

// Mm256HsubEpi16 is _mm256_hsub_epi16.
func Mm256HsubEpi16(a, b M256i) M256i { return split2[M256i](a, b, MmHsubEpi16) }

// Mm256HsubEpi32 is _mm256_hsub_epi32.
func Mm256HsubEpi32(a, b M256i) M256i { return split2[M256i](a, b, MmHsubEpi32) }

// Mm256HsubsEpi16 is _mm256_hsubs_epi16.
func Mm256HsubsEpi16(a, b M256i) M256i { return split2[M256i](a, b, MmHsubsEpi16) }

// Mm256AbsEpi8 is _mm256_abs_epi8.
func Mm256AbsEpi8(a M256i) M256i { return split1[M256i](a, MmAbsEpi8) }

// Mm256AbsEpi16 is _mm256_abs_epi16.
func Mm256AbsEpi16(a M256i) M256i { return split1[M256i](a, MmAbsEpi16) }

// Mm256AbsEpi32 is _mm256_abs_epi32.
func Mm256AbsEpi32(a M256i) M256i { return split1[M256i](a, MmAbsEpi32) }

// ===== Integer compares =====

// Mm256CmpeqEpi8 is _mm256_cmpeq_epi8.
func Mm256CmpeqEpi8(a, b M256i) M256i { return split2[M256i](a, b, MmCmpeqEpi8) }

// Mm256CmpeqEpi16 is _mm256_cmpeq_epi16.
func Mm256CmpeqEpi16(a, b M256i) M256i { return split2[M256i](a, b, MmCmpeqEpi16) }

// Mm256CmpeqEpi32 is _mm256_cmpeq_epi32.
func Mm256CmpeqEpi32(a, b M256i) M256i { return split2[M256i](a, b, MmCmpeqEpi32) }

// Mm256CmpeqEpi64 is _mm256_cmpeq_epi64.
func Mm256CmpeqEpi64(a, b M256i) M256i { return split2[M256i](a, b, MmCmpeqEpi64) }

// Mm256CmpgtEpi8 is _mm256_cmpgt_epi8.
func Mm256CmpgtEpi8(a, b M256i) M256i { return split2[M256i](a, b, MmCmpgtEpi8) }

// Mm256CmpgtEpi16 is _mm256_cmpgt_epi16.
func Mm256CmpgtEpi16(a, b M256i) M256i { return split2[M256i](a, b, MmCmpgtEpi16) }

// Mm256CmpgtEpi32 is _mm256_cmpgt_epi32.
func Mm256CmpgtEpi32(a, b M256i) M256i { return split2[M256i](a, b, MmCmpgtEpi32) }

// Mm256CmpgtEpi64 is _mm256_cmpgt_epi64.
func Mm256CmpgtEpi64(a, b M256i) M256i { return split2[M256i](a, b, MmCmpgtEpi64) }

// ===== Variable shifts =====

// Mm256SllvEpi32 is _mm256_sllv_epi32.
func Mm256SllvEpi32(a, b M256i) M256i { return split2[M256i](a, b, MmSllvEpi32) }

// Mm256SrlvEpi32 is _mm256_srlv_epi32.
func Mm256SrlvEpi32(a, b M256i) M256i { return split2[M256i](a, b, MmSrlvEpi32) }

// Mm256SravEpi32 is _mm256_srav_epi32.
func Mm256SravEpi32(a, b M256i) M256i { return split2[M256i](a, b, MmSravEpi32) }

// Mm256SllvEpi64 is _mm256_sllv_epi64.
func Mm256SllvEpi64(a, b M256i) M256i { return split2[M256i](a, b, MmSllvEpi64) }

// Mm256SrlvEpi64 is _mm256_srlv_epi64.
func Mm256SrlvEpi64(a, b M256i) M256i { return split2[M256i](a, b, MmSrlvEpi64) }

// ===== Unpack, pack and byte shuffle =====

// Mm256UnpackloEpi8 is _mm256_unpacklo_epi8.
func Mm256UnpackloEpi8(a, b M256i) M256i { return split2[M256i](a, b, MmUnpackloEpi8) }

// Mm256UnpackloEpi16 is _mm256_unpacklo_epi16.
func Mm256UnpackloEpi16(a, b M256i) M256i { return split2[M256i](a, b, MmUnpackloEpi16) }

// Mm256UnpackloEpi32 is _mm256_unpacklo_epi32.
func Mm256UnpackloEpi32(a, b M256i) M256i { return split2[M256i](a, b, MmUnpackloEpi32) }

// Mm256UnpackloEpi64 is _mm256_unpacklo_epi64.
func Mm256UnpackloEpi64(a, b M256i) M256i { return split2[M256i](a, b, MmUnpackloEpi64) }

// Mm256UnpackloPs is _mm256_unpacklo_ps.
func Mm256UnpackloPs(a, b M256) M256 { return split2[M256](a, b, MmUnpackloPs) }

// Mm256UnpackloPd is _mm256_unpacklo_pd.
func Mm256UnpackloPd(a, b M256d) M256d { return split2[M256d](a, b, MmUnpackloPd) }

// Mm256UnpackhiEpi8 is _mm256_unpackhi_epi8.
func Mm256UnpackhiEpi8(a, b M256i) M256i { return split2[M256i](a, b, MmUnpackhiEpi8) }

// Mm256UnpackhiEpi16 is _mm256_unpackhi_epi16.
func Mm256UnpackhiEpi16(a, b M256i) M256i { return split2[M256i](a, b, MmUnpackhiEpi16) }

// Mm256UnpackhiEpi32 is _mm256_unpackhi_epi32.
func Mm256UnpackhiEpi32(a, b M256i) M256i { return split2[M256i](a, b, MmUnpackhiEpi32) }

// Mm256UnpackhiEpi64 is _mm256_unpackhi_epi64.
func Mm256UnpackhiEpi64(a, b M256i) M256i { return split2[M256i](a, b, MmUnpackhiEpi64) }

// Mm256UnpackhiPs is _mm256_unpackhi_ps.
func Mm256UnpackhiPs(a, b M256) M256 { return split2[M256](a, b, MmUnpackhiPs) }

// Mm256UnpackhiPd is _mm256_unpackhi_pd.
func Mm256UnpackhiPd(a, b M256d) M256d { return split2[M256d](a, b, MmUnpackhiPd) }

// Mm256PacksEpi16 is _mm256_packs_epi16.
func Mm256PacksEpi16(a, b M256i) M256i { return split2[M256i](a, b, MmPacksEpi16) }

// Mm256PacksEpi32 is _mm256_packs_epi32.
func Mm256PacksEpi32(a, b M256i) M256i { return split2[M256i](a, b, MmPacksEpi32) }

// Mm256PackusEpi16 is _mm256_packus_epi16.
func Mm256PackusEpi16(a, b M256i) M256i { return split2[M256i](a, b, MmPackusEpi16) }

// Mm256PackusEpi32 is _mm256_packus_epi32.
func Mm256PackusEpi32(a, b M256i) M256i { return split2[M256i](a, b, MmPackusEpi32) }

// Mm256ShuffleEpi8 is _mm256_shuffle_epi8.
func Mm256ShuffleEpi8(a, b M256i) M256i { return split2[M256i](a, b, MmShuffleEpi8) }

// ===== Duplicates and conversions =====

// Mm256MoveldupPs is _mm256_moveldup_ps.
func Mm256MoveldupPs(a M256) M256 { return split1[M256](a, MmMoveldupPs) }

// Mm256MovehdupPs is _mm256_movehdup_ps.
func Mm256MovehdupPs(a M256) M256 { return split1[M256](a, MmMovehdupPs) }

// Mm256MovedupPd is _mm256_movedup_pd.
func Mm256MovedupPd(a M256d) M256d { return split1[M256d](a, MmMovedupPd) }

// Mm256Cvtepi32Ps is _mm256_cvtepi32_ps.
func Mm256Cvtepi32Ps(a M256i) M256 { return split1[M256](a, MmCvtepi32Ps) }

// Mm256CvtpsEpi32 is _mm256_cvtps_epi32.
func Mm256CvtpsEpi32(a M256) M256i { return split1[M256i](a, MmCvtpsEpi32) }

// Mm256CvttpsEpi32 is _mm256_cvttps_epi32.
func Mm256CvttpsEpi32(a M256) M256i { return split1[M256i](a, MmCvttpsEpi32) }

// Mm256FloorPs is _mm256_floor_ps.
func Mm256FloorPs(a M256) M256 { return split1[M256](a, MmFloorPs) }

// Mm256CeilPs is _mm256_ceil_ps.
func Mm256CeilPs(a M256) M256 { return split1[M256](a, MmCeilPs) }

// Mm256FloorPd is _mm256_floor_pd.
func Mm256FloorPd(a M256d) M256d { return split1[M256d](a, MmFloorPd) }

// Mm256CeilPd is _mm256_ceil_pd.
func Mm256CeilPd(a M256d) M256d { return split1[M256d](a, MmCeilPd) }
